// Package crypto holds hashing helpers layered on the RSA arithmetic.
//
// # Notes
//
// Fingerprint digests only public values. It exists for display and log
// correlation and is not a key encoding.
package crypto
