package eddsa

import (
	"github.com/samber/oops"
)

// Scheme binds the EdDSA algorithms to one validated Digest.
//
// A Scheme holds no mutable state: every operation is a pure function of its
// inputs, so a single Scheme may be shared freely between goroutines.
// Keys and signatures produced under one Scheme only verify under a Scheme
// using the same digest.
//
// Usage Example:
//
//	scheme, err := eddsa.NewScheme(eddsa.BLAKE2b512)
//	kp, err := scheme.GenerateKeypair(nil)
//	sig := kp.Sign(message)
//	err = scheme.Verify(kp.PublicKey(), message, sig)
type Scheme struct {
	digest Digest
}

// Ed25519 is the RFC 8032 scheme using SHA-512. The package-level helpers
// (GenerateKeypair, NewKeypair, KeypairFromBytes, Verify, ...) use it.
var Ed25519 = MustNewScheme(SHA512)

// NewScheme validates d and returns a Scheme bound to it.
// The digest is probed once with an empty input; if it does not produce
// exactly DIGEST_LENGTH bytes NewScheme fails with ErrInvalidDigestLength.
func NewScheme(d Digest) (*Scheme, error) {
	if d == nil {
		return nil, oops.
			In("eddsa").
			Code("nil_digest").
			Wrapf(ErrInvalidArgument, "digest cannot be nil")
	}

	if n := len(d.Sum()); n != DIGEST_LENGTH {
		return nil, oops.
			In("eddsa").
			Code("invalid_digest_length").
			With("expected", DIGEST_LENGTH, "actual", n).
			Wrapf(ErrInvalidDigestLength, "digest produced %d bytes", n)
	}

	return &Scheme{digest: d}, nil
}

// MustNewScheme is like NewScheme but panics if d is misconfigured.
// It is intended for package-level variables bound to known digests.
func MustNewScheme(d Digest) *Scheme {
	s, err := NewScheme(d)
	if err != nil {
		panic(err)
	}
	return s
}

// SchemeByName returns a Scheme for one of the built-in digest names.
func SchemeByName(name string) (*Scheme, error) {
	if name == DIGEST_SHA512 || name == "" {
		return Ed25519, nil
	}
	d, err := DigestByName(name)
	if err != nil {
		return nil, err
	}
	return NewScheme(d)
}

// Digest returns the digest this scheme is bound to.
func (s *Scheme) Digest() Digest {
	return s.orDefault().digest
}

// orDefault resolves a nil or zero-value Scheme to Ed25519. Zero values of
// Keypair, Verifier and BatchVerifier carry a nil scheme and go through here.
func (s *Scheme) orDefault() *Scheme {
	if s == nil || s.digest == nil {
		return Ed25519
	}
	return s
}

// sum hashes the concatenation of chunks into a fixed-size array.
func (s *Scheme) sum(chunks ...[]byte) (out [DIGEST_LENGTH]byte) {
	copy(out[:], s.orDefault().digest.Sum(chunks...))
	return out
}
