package arith

import (
	"math/big"

	"rsacore/internal/domain"
)

// ModExp computes base^exponent mod modulus by binary square-and-multiply.
//
// The modulus must be at least 1 and the exponent non-negative. A modulus of
// 1 always yields 0. Negative bases are reduced into [0, modulus) first.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, domain.Errorf("modexp", domain.ErrInvalidModulus, "modulus %s < 1", modulus)
	}
	if exponent.Sign() < 0 {
		return nil, domain.Errorf("modexp", domain.ErrNegativeExponent, "exponent %s < 0", exponent)
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	// Walk the exponent bits from least significant instead of halving a copy.
	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result, nil
}
