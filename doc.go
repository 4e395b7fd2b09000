// Package eddsa implements the EdDSA signature scheme over edwards25519
// (Ed25519, RFC 8032) with a pluggable 64-byte digest.
//
// Curve and scalar arithmetic is delegated to filippo.io/edwards25519. This
// package orchestrates key derivation, signing, verification and the
// fixed-width encodings of every value:
//
//	SecretKey   32 bytes  seed
//	PublicKey   32 bytes  compressed point A
//	Signature   64 bytes  R || S
//	Keypair     64 bytes  seed || A
//
// The digest is chosen by a Scheme. Ed25519 is the RFC 8032 scheme (SHA-512)
// and is used by the package-level helpers:
//
//	kp, err := eddsa.GenerateKeypair(nil)
//	sig := kp.Sign(message)
//	err = kp.PublicKey().Verify(message, sig)
//
// Other 64-byte digests (BLAKE2b512, SHA3_512, or any HashFunc) get their own
// Scheme through NewScheme.
//
// Every value is immutable after construction and every operation is
// stateless, so keys, signatures and schemes may be shared between goroutines
// without locking. Signing uses only constant-time arithmetic on secret data.
package eddsa
