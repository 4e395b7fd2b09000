package eddsa

// EdDSA Constants
//
// This file contains the fixed widths of every encoded value handled by this
// package, the names of the built-in digests, and the logging levels accepted
// by LogInit. All encodings are raw little-endian byte strings with no length
// prefix or framing; callers own any outer envelope.

// Encoding Lengths
const (
	// SECRET_KEY_LENGTH is the size of a secret key seed.
	SECRET_KEY_LENGTH = 32
	// PUBLIC_KEY_LENGTH is the size of a compressed Edwards point.
	PUBLIC_KEY_LENGTH = 32
	// SIGNATURE_LENGTH is the size of R || S.
	SIGNATURE_LENGTH = 64
	// KEYPAIR_LENGTH is the size of secret || public.
	KEYPAIR_LENGTH = SECRET_KEY_LENGTH + PUBLIC_KEY_LENGTH
	// EXPANDED_SECRET_KEY_LENGTH is the size of the clamped scalar || nonce prefix.
	EXPANDED_SECRET_KEY_LENGTH = 64
	// DIGEST_LENGTH is the output size every Digest must produce.
	DIGEST_LENGTH = 64
)

// Internal split points of the composite encodings
const (
	scalarLength = 32
	prefixLength = 32
	pointLength  = 32
)

// Digest Names
// Used by DigestByName and the eddsa command line tool.
const (
	DIGEST_SHA512      = "sha512"
	DIGEST_BLAKE2B_512 = "blake2b-512"
	DIGEST_SHA3_512    = "sha3-512"
)

// Log Levels
const (
	DEBUG = iota
	INFO
	WARNING
	ERROR
	FATAL
)
