package arith

import (
	"math/big"

	"rsacore/internal/domain"
)

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. The result is non-negative.
func GCD(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, domain.Errorf("gcd", domain.ErrDivisionByZero, "b is zero")
	}
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	r := new(big.Int)
	for {
		r.Mod(x, y)
		if r.Sign() == 0 {
			return y.Abs(y), nil
		}
		x, y, r = y, r, x
	}
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) (bool, error) {
	g, err := GCD(a, b)
	if err != nil {
		return false, err
	}
	return g.Cmp(one) == 0, nil
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)
