package cmd

import (
	"fmt"
	"os"

	cometos "github.com/cometbft/cometbft/libs/os"
	"github.com/spf13/cobra"

	shardcfg "github.com/strangelove-ventures/shardrecover/pkg/config"
)

const (
	flagOverwrite = "overwrite"
	flagDebugAddr = "debug-addr"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Commands to configure shardrecover",
	}

	cmd.AddCommand(initCmd())
	cmd.AddCommand(showCmd())

	return cmd
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "initialize configuration file and home directory if one doesn't already exist",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cmdFlags := cmd.Flags()

			overwrite, _ := cmdFlags.GetBool(flagOverwrite)
			if _, err := os.Stat(config.ConfigFile); !os.IsNotExist(err) && !overwrite {
				return fmt.Errorf("%s already exists. Provide the -o flag to overwrite the existing config",
					config.ConfigFile)
			}

			cfg := shardcfg.DefaultConfig()
			if cmdFlags.Changed(flagPrime) {
				cfg.Prime, _ = cmdFlags.GetString(flagPrime)
			}
			cfg.Workers, _ = cmdFlags.GetInt(flagWorkers)
			cfg.MaxCombinations, _ = cmdFlags.GetInt64(flagMaxCombinations)
			cfg.DebugAddr, _ = cmdFlags.GetString(flagDebugAddr)
			if lvl, _ := cmdFlags.GetString(flagLogLevel); lvl != "" {
				cfg.LogLevel = lvl
			}
			if format, _ := cmdFlags.GetString(flagLogFormat); format != "" {
				cfg.LogFormat = shardcfg.LogFormat(format)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// silence usage after all input has been validated
			cmd.SilenceUsage = true

			if err := cometos.EnsureDir(config.HomeDir, 0700); err != nil {
				return err
			}

			config.Config = cfg
			if err = config.WriteConfigFile(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully initialized configuration: %s\n", config.ConfigFile)
			return nil
		},
	}
	cmd.Flags().String(flagPrime, "", "decimal prime modulus of the field (default 2^256 - 189)")
	cmd.Flags().IntP(flagWorkers, "w", shardcfg.DefaultWorkers, "number of parallel search workers")
	cmd.Flags().Int64(flagMaxCombinations, 0, "refuse share sets with more combinations than this, 0 for no limit")
	cmd.Flags().StringP(flagDebugAddr, "d", "", "listen address for Prometheus metrics in format localhost:8543")
	cmd.Flags().BoolP(flagOverwrite, "o", false, "set to overwrite an existing config.yaml")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.Config.MustMarshalYaml())
			return err
		},
	}
}
