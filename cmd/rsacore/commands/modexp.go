package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsacore/internal/arith"
)

func modexpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modexp [--] <base> <exponent> <modulus>",
		Short: "Print base^exponent mod modulus",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts([]string{"base", "exponent", "modulus"}, args)
			if err != nil {
				return err
			}
			r, err := arith.ModExp(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
