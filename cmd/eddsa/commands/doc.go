// Package commands defines the eddsa CLI.
//
// Commands
//
//   - keygen   Generate a keypair and write it as a PKCS#8 PEM file
//   - pubkey   Print the public key and fingerprint of a PEM keypair
//   - sign     Sign a file (or stdin) and print the signature
//   - verify   Check a signature; the exit status reports the result
//
// Public keys and signatures are printed in the I2P base64 alphabet. The
// --digest flag selects the scheme for every command; keys generated under a
// non-SHA-512 digest must be used with the same --digest afterwards.
package commands
