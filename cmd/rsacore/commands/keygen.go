package commands

import (
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"

	"rsacore/internal/crypto"
	"rsacore/internal/domain"
)

// seedFlags are the three candidate seeds keygen and demo read.
type seedFlags struct {
	p, q, e string
}

func (s *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.p, "p", "", "seed for the first prime")
	cmd.Flags().StringVar(&s.q, "q", "", "seed for the second prime")
	cmd.Flags().StringVar(&s.e, "e", "65537", "seed for the public exponent")
	_ = cmd.MarkFlagRequired("p")
	_ = cmd.MarkFlagRequired("q")
}

func (s *seedFlags) parse() (p, q, e *big.Int, err error) {
	v, err := parseInts([]string{"p", "q", "e"}, []string{s.p, s.q, s.e})
	if err != nil {
		return nil, nil, nil, err
	}
	return v[0], v[1], v[2], nil
}

func keygenCmd() *cobra.Command {
	var seeds seedFlags
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Advance seeds to primes and derive the private exponent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, q, e, err := seeds.parse()
			if err != nil {
				return err
			}
			key, err := appCtx.Keys.Generate(cmd.Context(), p, q, e)
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			defer key.Wipe()
			printKey(cmd.OutOrStdout(), key)
			fmt.Fprintf(cmd.OutOrStdout(), "fingerprint:      %s\n", crypto.Fingerprint(key.Modulus, key.PublicExponent))
			return nil
		},
	}
	seeds.register(cmd)
	return cmd
}

func printKey(w io.Writer, key domain.KeyPair) {
	fmt.Fprintf(w, "p:                %s\n", key.P)
	fmt.Fprintf(w, "q:                %s\n", key.Q)
	fmt.Fprintf(w, "modulus:          %s\n", key.Modulus)
	fmt.Fprintf(w, "totient:          %s\n", key.Totient)
	fmt.Fprintf(w, "public exponent:  %s\n", key.PublicExponent)
	fmt.Fprintf(w, "private exponent: %s\n", key.PrivateExponent)
}
