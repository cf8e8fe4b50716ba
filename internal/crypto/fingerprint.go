package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math/big"
)

// Fingerprint returns a short hex fingerprint of a public key (modulus,
// exponent).
//
// Each value is hashed as a 4-byte big-endian length followed by its
// big-endian magnitude, then SHA-256 is truncated to 10 bytes (20 hex chars).
func Fingerprint(modulus, exponent *big.Int) string {
	h := sha256.New()
	for _, v := range []*big.Int{modulus, exponent} {
		b := v.Bytes()
		var l [4]byte
		binary.BigEndian.PutUint32(l[:], uint32(len(b)))
		h.Write(l[:])
		h.Write(b)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
