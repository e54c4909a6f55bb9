package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	shardcfg "github.com/strangelove-ventures/shardrecover/pkg/config"
	"github.com/strangelove-ventures/shardrecover/version"
)

const (
	flagHome      = "home"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

var config shardcfg.RuntimeConfig

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shardrecover",
		Short: "Reconstruct a secret from threshold shares, tolerating corrupted shares",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	cmd.AddCommand(solveCmd())
	cmd.AddCommand(decodeCmd())
	cmd.AddCommand(inverseCmd())
	cmd.AddCommand(configCmd())
	cmd.AddCommand(version.NewVersionCommand())

	cmd.PersistentFlags().String(flagHome, "", "Directory for config and data (default is $HOME/.shardrecover)")
	cmd.PersistentFlags().String(flagLogLevel, "", "log level: debug, info, error or none (overrides config)")
	cmd.PersistentFlags().String(flagLogFormat, "", "log format: plain or json (overrides config)")
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		// Cobra will print the error
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	home, _ := cmd.Flags().GetString(flagHome)
	if home == "" {
		userHome, err := homedir.Dir()
		if err != nil {
			return err
		}
		home = filepath.Join(userHome, ".shardrecover")
	}
	config = shardcfg.NewRuntimeConfig(home)

	v := viper.New()
	v.SetConfigFile(config.ConfigFile)
	v.SetEnvPrefix("shardrecover")
	v.AutomaticEnv()

	defaults := shardcfg.DefaultConfig()
	v.SetDefault("prime", defaults.Prime)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("maxCombinations", defaults.MaxCombinations)
	v.SetDefault("debugAddr", defaults.DebugAddr)
	v.SetDefault("logLevel", defaults.LogLevel)
	v.SetDefault("logFormat", defaults.LogFormat)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("failed to read config file (%s): %w", config.ConfigFile, err)
		}
		// no config on disk, defaults and environment apply
	}
	if err := v.Unmarshal(&config.Config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	flags := cmd.Flags()
	if lvl, _ := flags.GetString(flagLogLevel); lvl != "" {
		config.Config.LogLevel = lvl
	}
	if format, _ := flags.GetString(flagLogFormat); format != "" {
		config.Config.LogFormat = shardcfg.LogFormat(format)
	}
	return nil
}
