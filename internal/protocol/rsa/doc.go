// Package rsa derives private exponents and applies the RSA transform pair.
//
// # Key derivation
//
// Given confirmed primes p, q and a public exponent n coprime with the
// totient (p-1)(q-1), the private exponent d is the unique value in
// (0, totient] with d*n ≡ 1 (mod totient). LinearSearch tries i = 0, 1, ...
// up to n-1 looking for an i with n | i*totient+1, which is guaranteed to
// exist when gcd(n, totient) = 1. ExtendedEuclid reaches the same d in
// O(log n) steps.
//
// # Transform direction
//
// ModeSignature (the default) encrypts with the private exponent and decrypts
// with the public one. That is the signing direction, not confidentiality.
// ModeConfidentiality uses the standard pairing and must be asked for.
package rsa
