package rsa

import (
	"fmt"
	"math/big"

	"rsacore/internal/arith"
	"rsacore/internal/domain"
)

// Mode fixes which exponent each direction of the transform uses.
type Mode string

const (
	// ModeSignature encrypts with the private exponent and decrypts with the public one.
	ModeSignature Mode = "signature"
	// ModeConfidentiality encrypts with the public exponent and decrypts with the private one.
	ModeConfidentiality Mode = "confidentiality"
)

// ParseMode accepts "signature" or "confidentiality".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSignature, ModeConfidentiality:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidArgument, s)
	}
}

// Exponents returns the (encrypt, decrypt) exponents of key under mode.
func (m Mode) Exponents(key domain.KeyPair) (enc, dec *big.Int) {
	if m == ModeConfidentiality {
		return key.PublicExponent, key.PrivateExponent
	}
	return key.PrivateExponent, key.PublicExponent
}

// Encrypt transforms plaintext m under key. m must lie in [0, key.Modulus).
func Encrypt(key domain.KeyPair, m *big.Int, mode Mode) (*big.Int, error) {
	enc, _ := mode.Exponents(key)
	return Transform(m, enc, key.Modulus)
}

// Decrypt inverts Encrypt. c must lie in [0, key.Modulus).
func Decrypt(key domain.KeyPair, c *big.Int, mode Mode) (*big.Int, error) {
	_, dec := mode.Exponents(key)
	return Transform(c, dec, key.Modulus)
}

// Transform computes x^exponent mod modulus after checking x is in [0, modulus).
func Transform(x, exponent, modulus *big.Int) (*big.Int, error) {
	if x == nil || exponent == nil || modulus == nil {
		return nil, domain.Errorf("transform", domain.ErrInvalidArgument, "missing operand")
	}
	if modulus.Sign() <= 0 {
		return nil, domain.Errorf("transform", domain.ErrInvalidModulus, "modulus %s < 1", modulus)
	}
	if x.Sign() < 0 || x.Cmp(modulus) >= 0 {
		return nil, domain.Errorf("transform", domain.ErrMessageOutOfRange, "%s not in [0, %s)", x, modulus)
	}
	return arith.ModExp(x, exponent, modulus)
}
