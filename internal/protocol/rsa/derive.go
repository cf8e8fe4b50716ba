package rsa

import (
	"context"
	"fmt"
	"math/big"

	"rsacore/internal/domain"
	"rsacore/internal/logging"
)

// Strategy selects how the private exponent is solved for.
type Strategy string

const (
	// LinearSearch scans i in [0, n) for n | i*totient+1.
	LinearSearch Strategy = "linear"
	// ExtendedEuclid inverts n modulo the totient directly.
	ExtendedEuclid Strategy = "euclid"
)

// ParseStrategy accepts "linear" or "euclid".
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case LinearSearch, ExtendedEuclid:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidArgument, s)
	}
}

// ctxCheckInterval is how many linear-search iterations run between context checks.
const ctxCheckInterval = 1024

// DerivePrivateKey solves d*n ≡ 1 (mod (p-1)(q-1)) by linear search.
func DerivePrivateKey(p, q, n *big.Int) (*big.Int, error) {
	d, _, err := linearSearch(context.Background(), domain.Totient(p, q), n)
	return d, err
}

// Deriver implements domain.KeyDeriver.
type Deriver struct {
	Strategy Strategy
	Logger   logging.Logger
}

// NewDeriver returns a Deriver; an empty strategy selects LinearSearch and a
// nil logger discards.
func NewDeriver(strategy Strategy, logger logging.Logger) *Deriver {
	if strategy == "" {
		strategy = LinearSearch
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Deriver{Strategy: strategy, Logger: logger}
}

// Derive returns the private exponent for p, q and n. A context deadline
// yields domain.ErrTimeout and no exponent.
func (d *Deriver) Derive(ctx context.Context, p, q, n *big.Int) (*big.Int, error) {
	if err := domain.ContextError(ctx, "derive"); err != nil {
		return nil, err
	}
	totient := domain.Totient(p, q)

	switch d.Strategy {
	case ExtendedEuclid:
		key, err := extendedEuclid(totient, n)
		if err != nil {
			return nil, err
		}
		d.Logger.Debug(ctx, "private key found", "strategy", string(d.Strategy))
		return key, nil
	case LinearSearch, "":
		key, i, err := linearSearch(ctx, totient, n)
		if err != nil {
			return nil, err
		}
		d.Logger.Debug(ctx, "private key found", "strategy", string(LinearSearch), "iteration", i.String())
		return key, nil
	default:
		return nil, domain.Errorf("derive", domain.ErrInvalidArgument, "unknown strategy %q", d.Strategy)
	}
}

// linearSearch returns (i*totient+1)/n for the first i in [0, n) that divides
// exactly, along with that i.
func linearSearch(ctx context.Context, totient, n *big.Int) (*big.Int, *big.Int, error) {
	if err := checkInputs(totient, n); err != nil {
		return nil, nil, err
	}
	i := new(big.Int)
	k := big.NewInt(1) // i*totient + 1
	quo, rem := new(big.Int), new(big.Int)
	for steps := 0; i.Cmp(n) < 0; steps++ {
		if steps%ctxCheckInterval == 0 {
			if err := domain.ContextError(ctx, "derive"); err != nil {
				return nil, nil, err
			}
		}
		quo.QuoRem(k, n, rem)
		if rem.Sign() == 0 {
			return quo, i, nil
		}
		i.Add(i, one)
		k.Add(k, totient)
	}
	return nil, nil, domain.Errorf("derive", domain.ErrKeyDerivationFailed,
		"no i in [0, %s) solves the key equation for totient %s", n, totient)
}

// extendedEuclid returns n^-1 mod totient mapped into (0, totient].
func extendedEuclid(totient, n *big.Int) (*big.Int, error) {
	if err := checkInputs(totient, n); err != nil {
		return nil, err
	}
	x := new(big.Int)
	g := new(big.Int).GCD(x, nil, n, totient)
	if g.Cmp(one) != 0 {
		return nil, domain.Errorf("derive", domain.ErrKeyDerivationFailed,
			"gcd(%s, %s) = %s, exponent has no inverse", n, totient, g)
	}
	x.Mod(x, totient)
	if x.Sign() == 0 {
		x.Set(totient)
	}
	return x, nil
}

func checkInputs(totient, n *big.Int) error {
	if totient.Sign() <= 0 {
		return domain.Errorf("derive", domain.ErrKeyDerivationFailed, "totient %s must be positive", totient)
	}
	if n.Sign() <= 0 {
		return domain.Errorf("derive", domain.ErrKeyDerivationFailed, "exponent %s must be positive", n)
	}
	return nil
}

var one = big.NewInt(1)

// Compile-time assertion that Deriver implements domain.KeyDeriver.
var _ domain.KeyDeriver = (*Deriver)(nil)
