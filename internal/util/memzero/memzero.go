// Package memzero wipes secret material held in byte slices and big integers.
package memzero

import (
	"crypto/subtle"
	"math/big"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// ZeroInt overwrites the limbs backing x and leaves x equal to 0.
// Copies made earlier by math/big are out of reach.
//
//go:noinline
func ZeroInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(&words)
	x.SetInt64(0)
}
