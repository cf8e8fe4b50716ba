package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsacore/internal/arith"
)

func gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd [--] <a> <b>",
		Short: "Print the greatest common divisor of a and b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts([]string{"a", "b"}, args)
			if err != nil {
				return err
			}
			g, err := arith.GCD(v[0], v[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g)
			return nil
		},
	}
}
