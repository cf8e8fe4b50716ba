package arith

import (
	"math/big"

	"rsacore/internal/domain"
)

// DefaultRounds gives a false-positive bound of 4^-40.
const DefaultRounds = 40

// IsProbablyPrime runs the Miller-Rabin test on n with the given number of
// rounds, drawing witnesses uniformly from [2, n-2] via rng.
//
// A false result is definitive. A true result is wrong with probability at
// most 4^-rounds.
func IsProbablyPrime(n *big.Int, rounds int, rng domain.RandomSource) (bool, error) {
	if rounds < 1 {
		return false, domain.Errorf("primality", domain.ErrInvalidRounds, "rounds %d < 1", rounds)
	}
	switch {
	case n.Cmp(two) < 0:
		return false, nil
	case n.Cmp(two) == 0, n.Cmp(big.NewInt(3)) == 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}

	// n-1 = 2^r * s with s odd.
	nm1 := new(big.Int).Sub(n, one)
	r := nm1.TrailingZeroBits()
	s := new(big.Int).Rsh(nm1, r)

	// Witnesses span n-3 values starting at 2.
	span := new(big.Int).Sub(n, big.NewInt(3))
	for i := 0; i < rounds; i++ {
		a, err := rng.Int(span)
		if err != nil {
			return false, domain.Wrap("primality", err)
		}
		a.Add(a, two)

		x, err := ModExp(a, s, n)
		if err != nil {
			return false, err
		}
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		witnessed := true
		for j := uint(1); j < r; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nm1) == 0 {
				witnessed = false
				break
			}
		}
		if witnessed {
			return false, nil
		}
	}
	return true, nil
}

// Tester binds a round count and witness source to IsProbablyPrime.
type Tester struct {
	Rounds int
	Rand   domain.RandomSource
}

// NewTester returns a Tester; rng nil selects SystemSource.
func NewTester(rounds int, rng domain.RandomSource) *Tester {
	if rng == nil {
		rng = SystemSource()
	}
	return &Tester{Rounds: rounds, Rand: rng}
}

// IsProbablyPrime implements domain.PrimalityTester.
func (t *Tester) IsProbablyPrime(n *big.Int) (bool, error) {
	return IsProbablyPrime(n, t.Rounds, t.Rand)
}

// Compile-time assertion that Tester implements domain.PrimalityTester.
var _ domain.PrimalityTester = (*Tester)(nil)
