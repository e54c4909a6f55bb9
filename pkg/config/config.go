package config

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/cometbft/cometbft/libs/log"
	"gopkg.in/yaml.v2"

	"github.com/strangelove-ventures/shardrecover/pkg/field"
	"github.com/strangelove-ventures/shardrecover/pkg/recovery"
)

type LogFormat string

const (
	LogFormatPlain LogFormat = "plain"
	LogFormatJSON  LogFormat = "json"

	DefaultWorkers  = 1
	DefaultLogLevel = "info"
)

// Config maps to the on-disk yaml format
type Config struct {
	Prime           string    `yaml:"prime" mapstructure:"prime"`
	Workers         int       `yaml:"workers" mapstructure:"workers"`
	MaxCombinations int64     `yaml:"maxCombinations" mapstructure:"maxCombinations"`
	DebugAddr       string    `yaml:"debugAddr,omitempty" mapstructure:"debugAddr"`
	LogLevel        string    `yaml:"logLevel" mapstructure:"logLevel"`
	LogFormat       LogFormat `yaml:"logFormat" mapstructure:"logFormat"`
}

func DefaultConfig() Config {
	return Config{
		Prime:     field.DefaultPrime().String(),
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
	}
}

func (c *Config) MustMarshalYaml() []byte {
	out, err := yaml.Marshal(c)
	if err != nil {
		panic(err)
	}
	return out
}

// PrimeInt parses the configured prime. An empty value selects the default.
func (c *Config) PrimeInt() (*big.Int, error) {
	if c.Prime == "" {
		return field.DefaultPrime(), nil
	}
	p, ok := new(big.Int).SetString(c.Prime, 10)
	if !ok {
		return nil, fmt.Errorf("prime must be a decimal integer, got %q", c.Prime)
	}
	if p.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("prime must be greater than 1, got %s", p)
	}
	return p, nil
}

func (c *Config) Validate() error {
	if _, err := c.PrimeInt(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1", c.Workers)
	}
	if c.MaxCombinations < 0 {
		return fmt.Errorf("maxCombinations (%d) must not be negative", c.MaxCombinations)
	}
	if _, err := log.AllowLevel(c.level()); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", LogFormatPlain, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q, expected %q or %q", c.LogFormat, LogFormatPlain, LogFormatJSON)
	}
	return nil
}

func (c *Config) level() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// SolverConfig converts the on-disk settings for the reconstruction engine.
func (c *Config) SolverConfig() (recovery.SolverConfig, error) {
	p, err := c.PrimeInt()
	if err != nil {
		return recovery.SolverConfig{}, err
	}
	return recovery.SolverConfig{
		Prime:           p,
		Workers:         c.Workers,
		MaxCombinations: c.MaxCombinations,
	}, nil
}

// Logger builds the configured logger writing to out.
func (c *Config) Logger(out io.Writer) (log.Logger, error) {
	var logger log.Logger
	if c.LogFormat == LogFormatJSON {
		logger = log.NewTMJSONLogger(log.NewSyncWriter(out))
	} else {
		logger = log.NewTMLogger(log.NewSyncWriter(out))
	}

	option, err := log.AllowLevel(c.level())
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, option), nil
}

type RuntimeConfig struct {
	HomeDir    string
	ConfigFile string
	Config     Config
}

func NewRuntimeConfig(home string) RuntimeConfig {
	return RuntimeConfig{
		HomeDir:    home,
		ConfigFile: filepath.Join(home, "config.yaml"),
		Config:     DefaultConfig(),
	}
}

func (c RuntimeConfig) WriteConfigFile() error {
	if err := os.MkdirAll(c.HomeDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(c.ConfigFile, c.Config.MustMarshalYaml(), 0600)
}
