package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsacore/internal/protocol/rsa"
)

func encryptCmd() *cobra.Command {
	return transformCmd("encrypt [flags] [--] <plaintext>", "Compute plaintext^key mod modulus", "plaintext")
}

func decryptCmd() *cobra.Command {
	return transformCmd("decrypt [flags] [--] <ciphertext>", "Compute ciphertext^key mod modulus", "ciphertext")
}

// transformCmd builds encrypt and decrypt; both are x^key mod modulus with x
// required to lie in [0, modulus).
func transformCmd(use, short, operand string) *cobra.Command {
	var modulus, key string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts([]string{operand, "modulus", "key"}, []string{args[0], modulus, key})
			if err != nil {
				return err
			}
			r, err := rsa.Transform(v[0], v[2], v[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().StringVar(&modulus, "modulus", "", "RSA modulus p*q")
	cmd.Flags().StringVar(&key, "key", "", "exponent to apply")
	_ = cmd.MarkFlagRequired("modulus")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
