package domain

import (
	"context"
	"math/big"
)

// RandomSource supplies uniform big integers. Implementations must return a
// value in [0, bound) or an error; they are never consulted with bound <= 0.
type RandomSource interface {
	Int(bound *big.Int) (*big.Int, error)
}

// PrimalityTester decides whether a candidate is (probably) prime.
type PrimalityTester interface {
	IsProbablyPrime(n *big.Int) (bool, error)
}

// KeyDeriver solves d*n ≡ 1 (mod (p-1)(q-1)) for d.
type KeyDeriver interface {
	Derive(ctx context.Context, p, q, n *big.Int) (*big.Int, error)
}

// KeyService turns caller-supplied seeds into a usable key pair.
type KeyService interface {
	NextPrime(ctx context.Context, seed *big.Int) (*big.Int, error)
	NextExponent(ctx context.Context, seed, totient *big.Int) (*big.Int, error)
	Generate(ctx context.Context, seedP, seedQ, seedN *big.Int) (KeyPair, error)
}
