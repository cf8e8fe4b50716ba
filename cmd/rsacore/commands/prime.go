package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func primeCmd() *cobra.Command {
	var next bool
	cmd := &cobra.Command{
		Use:   "prime [flags] [--] <n>",
		Short: "Test n for primality, or find the next probable prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if next {
				p, err := appCtx.Keys.NextPrime(cmd.Context(), n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, p)
				return nil
			}

			ok, err := appCtx.Tester.IsProbablyPrime(n)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "%s is probably prime (%d rounds)\n", n, appCtx.Rounds)
			} else {
				fmt.Fprintf(out, "%s is composite\n", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&next, "next", false, "print the smallest probable prime >= n")
	return cmd
}
