package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsacore/internal/protocol/rsa"
)

// demoCmd generates a key from seeds and round-trips one plaintext through
// the configured transform pairing.
func demoCmd() *cobra.Command {
	var (
		seeds     seedFlags
		plaintext string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a key and round-trip a plaintext",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, q, e, err := seeds.parse()
			if err != nil {
				return err
			}
			m, err := parseInt("plaintext", plaintext)
			if err != nil {
				return err
			}

			key, err := appCtx.Keys.Generate(cmd.Context(), p, q, e)
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			defer key.Wipe()

			c, err := rsa.Encrypt(key, m, appCtx.Mode)
			if err != nil {
				return fmt.Errorf("encrypting: %w", err)
			}
			back, err := rsa.Decrypt(key, c, appCtx.Mode)
			if err != nil {
				return fmt.Errorf("decrypting: %w", err)
			}

			out := cmd.OutOrStdout()
			printKey(out, key)
			fmt.Fprintf(out, "mode:             %s\n", appCtx.Mode)
			fmt.Fprintf(out, "ciphertext:       %s\n", c)
			fmt.Fprintf(out, "plaintext:        %s\n", back)
			if back.Cmp(m) != 0 {
				return fmt.Errorf("round trip mismatch: got %s, want %s", back, m)
			}
			return nil
		},
	}
	seeds.register(cmd)
	cmd.Flags().StringVar(&plaintext, "plaintext", "42", "integer in [0, modulus) to round-trip")
	return cmd
}
