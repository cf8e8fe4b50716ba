// Package arith holds the number-theoretic primitives behind rsacore.
//
// Contents
//
//   - Greatest common divisor by the Euclidean algorithm (GCD, Coprime)
//   - Binary square-and-multiply modular exponentiation (ModExp)
//   - Miller-Rabin probabilistic primality testing (IsProbablyPrime, Tester)
//   - Witness sources: OS randomness (SystemSource) and a reproducible
//     ChaCha20 stream keyed from a seed (NewSeededSource)
//
// # Notes
//
// Every function is pure over its inputs: arguments are never mutated and
// results are freshly allocated. The only state is inside a RandomSource,
// which callers inject explicitly.
package arith
