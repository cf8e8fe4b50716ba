// Package commands defines the rsacore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - gcd       Greatest common divisor of two integers
//   - prime     Miller-Rabin test, or the next probable prime with --next
//   - modexp    base^exponent mod modulus
//   - keygen    Advance seeds to primes and derive the private exponent
//   - fingerprint  Short digest of a public key (modulus, exponent)
//   - encrypt   Apply x^key mod modulus to a plaintext
//   - decrypt   Apply x^key mod modulus to a ciphertext
//   - demo      keygen followed by an encrypt/decrypt round trip
//
// # Negative operands
//
// A positional argument such as -12 parses as a shorthand flag. Put flags
// first and end them with --:
//
//	rsacore gcd -- -12 18
//	rsacore encrypt --modulus 3233 --key 17 -- 65
//
// Flag values may be negative as written (--p=-5).
//
// # Implementation
//
// The root command validates the persistent flags and builds the dependency
// graph (witness source, tester, deriver, key service) before any subcommand
// runs. Results go to stdout; structured logs go to stderr.
package commands
