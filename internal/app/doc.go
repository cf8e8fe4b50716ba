// Package app wires application dependencies for the CLI.
//
// It validates Config and builds the logger, witness source, primality
// tester, key deriver and key service, exposing them via the Wire struct for
// commands to use.
package app
