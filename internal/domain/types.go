package domain

import (
	"math/big"

	"rsacore/internal/util/memzero"
)

// KeyPair is an RSA key derived from two confirmed primes and a public exponent.
//
// PrivateExponent satisfies PrivateExponent*PublicExponent ≡ 1 (mod Totient).
type KeyPair struct {
	P, Q            *big.Int
	Modulus         *big.Int // P*Q
	Totient         *big.Int // (P-1)(Q-1)
	PublicExponent  *big.Int
	PrivateExponent *big.Int
}

// NewKeyPair computes the modulus and totient of p and q and bundles them with
// the exponents. It does not validate the key equation.
func NewKeyPair(p, q, publicExponent, privateExponent *big.Int) KeyPair {
	return KeyPair{
		P:               new(big.Int).Set(p),
		Q:               new(big.Int).Set(q),
		Modulus:         new(big.Int).Mul(p, q),
		Totient:         Totient(p, q),
		PublicExponent:  new(big.Int).Set(publicExponent),
		PrivateExponent: new(big.Int).Set(privateExponent),
	}
}

// Totient returns (p-1)(q-1).
func Totient(p, q *big.Int) *big.Int {
	one := big.NewInt(1)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	return pm1.Mul(pm1, qm1)
}

// Valid reports whether the private exponent is positive and satisfies the
// key equation against the totient.
func (k KeyPair) Valid() bool {
	if k.PrivateExponent == nil || k.PublicExponent == nil || k.Totient == nil {
		return false
	}
	if k.PrivateExponent.Sign() <= 0 || k.Totient.Sign() <= 0 {
		return false
	}
	prod := new(big.Int).Mul(k.PrivateExponent, k.PublicExponent)
	want := new(big.Int).Mod(big.NewInt(1), k.Totient)
	return prod.Mod(prod, k.Totient).Cmp(want) == 0
}

// Wipe zeroes the private exponent in place. The KeyPair must not be used for
// private operations afterwards.
func (k *KeyPair) Wipe() {
	memzero.ZeroInt(k.PrivateExponent)
}
