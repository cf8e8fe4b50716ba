package commands

import (
	"github.com/spf13/cobra"

	"rsacore/internal/app"
)

var (
	cfg    = app.DefaultConfig()
	appCtx *app.Wire
)

// Execute runs the rsacore CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	cfg = app.DefaultConfig()
	root := &cobra.Command{
		Use:          "rsacore",
		Short:        "RSA arithmetic: primality, modular exponentiation and key derivation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.LogOutput = cmd.ErrOrStderr()
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Miller-Rabin rounds per candidate")
	pf.DurationVar(&cfg.Timeout, "timeout", 0, "bound on key generation, e.g. 5s (0 = none)")
	pf.StringVar(&cfg.Seed, "seed", "", "seed for a reproducible witness stream (default OS randomness)")
	pf.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "private key search: linear or euclid")
	pf.StringVar(&cfg.Mode, "mode", cfg.Mode, "transform pairing for demo: signature or confidentiality")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")

	root.AddCommand(gcdCmd(), primeCmd(), modexpCmd(), keygenCmd(), fingerprintCmd(),
		encryptCmd(), decryptCmd(), demoCmd())
	return root
}
