package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/shardrecover/pkg/radix"
)

const flagToBase = "to-base"

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode [base] [digits]",
		Aliases: []string{"d"},
		Short:   "Decode a share value from the given base",
		Args:    validateDecode,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := strconv.Atoi(args[0])
			toBase, _ := cmd.Flags().GetInt(flagToBase)

			cmd.SilenceUsage = true

			v, err := radix.Decode(args[1], base)
			if err != nil {
				return err
			}
			s, err := radix.Encode(v, toBase)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().Int(flagToBase, 10, "base of the printed value, between 2 and 36")
	return cmd
}

func validateDecode(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("wrong num args exp(2) got(%d)", len(args))
	}
	base, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("base must be an integer got(%s)", args[0])
	}
	return radix.ValidateBase(base)
}
