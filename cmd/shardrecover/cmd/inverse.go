package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/shardrecover/pkg/field"
)

func inverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inverse [a] [modulus]",
		Short: "Compute the modular inverse of a",
		Long: "Compute the modular inverse of a.\n\n" +
			"[modulus] defaults to the configured prime when omitted.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bigFromArg("a", args[0])
			if err != nil {
				return err
			}

			var m *big.Int
			if len(args) == 2 {
				if m, err = bigFromArg("modulus", args[1]); err != nil {
					return err
				}
			} else if m, err = config.Config.PrimeInt(); err != nil {
				return err
			}

			cmd.SilenceUsage = true

			inv, err := field.Inverse(a, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv.String())
			return nil
		},
	}
	return cmd
}
