// Package keygen turns caller-supplied seeds into a usable key pair.
//
// It advances each prime seed until the primality tester accepts it,
// advances the public exponent seed until it is prime and coprime with the
// totient, then asks the deriver for the private exponent. The whole run is
// bounded by an optional timeout, reported as domain.ErrTimeout.
package keygen
