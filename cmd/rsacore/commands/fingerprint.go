package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsacore/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	var modulus, exponent string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a public key fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts([]string{"modulus", "e"}, []string{modulus, exponent})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(v[0], v[1]))
			return nil
		},
	}
	cmd.Flags().StringVar(&modulus, "modulus", "", "RSA modulus p*q")
	cmd.Flags().StringVar(&exponent, "e", "65537", "public exponent")
	_ = cmd.MarkFlagRequired("modulus")
	return cmd
}
