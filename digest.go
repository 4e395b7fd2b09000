package eddsa

import (
	"crypto/sha512"
	"hash"

	"github.com/samber/oops"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest produces a deterministic 64-byte digest of the concatenation of its
// chunks. Passing the input as chunks lets callers hash prefix || M and
// R || A || M without building the concatenation.
//
// A Digest is checked once by NewScheme; after that its output is assumed to
// be DIGEST_LENGTH bytes on every call.
type Digest interface {
	Sum(chunks ...[]byte) []byte
}

// HashFunc adapts a hash.Hash constructor such as sha512.New into a Digest.
// A fresh hash is created per call, so a HashFunc is safe for concurrent use.
type HashFunc func() hash.Hash

// Sum implements Digest.
func (f HashFunc) Sum(chunks ...[]byte) []byte {
	h := f()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

var (
	// SHA512 is the digest mandated by RFC 8032 for Ed25519.
	SHA512 Digest = HashFunc(sha512.New)

	// BLAKE2b512 is unkeyed BLAKE2b with a 64-byte output.
	BLAKE2b512 Digest = HashFunc(newBLAKE2b512)

	// SHA3_512 is FIPS 202 SHA3-512.
	SHA3_512 Digest = HashFunc(sha3.New512)
)

func newBLAKE2b512() hash.Hash {
	// New512 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New512(nil)
	return h
}

// DigestByName returns the built-in Digest registered under name.
// Recognized names are DIGEST_SHA512, DIGEST_BLAKE2B_512 and DIGEST_SHA3_512.
func DigestByName(name string) (Digest, error) {
	switch name {
	case DIGEST_SHA512, "":
		return SHA512, nil
	case DIGEST_BLAKE2B_512:
		return BLAKE2b512, nil
	case DIGEST_SHA3_512:
		return SHA3_512, nil
	default:
		return nil, oops.
			In("eddsa").
			Code("unknown_digest").
			With("name", name).
			Wrapf(ErrUnknownDigest, "%q", name)
	}
}
