package eddsa

import (
	"filippo.io/edwards25519"
)

// Sign produces the deterministic signature of message under esk, where pub
// must be the PublicKey derived from esk. Signing consumes no randomness:
// the same (esk, message) always yields the same signature.
//
// RFC 8032 section 5.1.6:
//
//	r = digest(prefix || M) mod L
//	R = [r]B
//	k = digest(R || A || M) mod L
//	S = (r + k * a) mod L
//
// Every step on secret data is constant time in the edwards25519 package.
//
// A zero-value ExpandedSecretKey has no scalar to sign with. Sign then logs an
// error and returns a signature whose S is out of range, so it fails
// verification under every key with ErrInvalidSignature.
func (esk ExpandedSecretKey) Sign(message []byte, pub PublicKey) Signature {
	if esk.scalar == nil {
		log.Error("Sign called on an uninitialized ExpandedSecretKey")
		return unsignedSignature()
	}
	scheme := esk.scheme.orDefault()

	// r = digest(prefix || M) mod L
	rh := scheme.sum(esk.prefix[:], message)
	r, _ := new(edwards25519.Scalar).SetUniformBytes(rh[:])
	wipe(rh[:])

	// R = [r]B
	var sig Signature
	R := new(edwards25519.Point).ScalarBaseMult(r)
	copy(sig.r[:], R.Bytes())

	// k = digest(R || A || M) mod L
	k := scheme.challenge(sig.r[:], pub.compressed[:], message)

	// S = r + k * a
	S := new(edwards25519.Scalar).MultiplyAdd(k, esk.scalar, r)
	copy(sig.s[:], S.Bytes())

	return sig
}

// unsignedSignature is returned when there is no key to sign with. Its S is
// 2^256 - 1, which is not reduced modulo L, so every verifier rejects it
// with ErrInvalidSignature.
func unsignedSignature() Signature {
	var sig Signature
	for i := range sig.s {
		sig.s[i] = 0xff
	}
	return sig
}

// challenge computes k = digest(R || A || M) reduced modulo L.
func (s *Scheme) challenge(R, A, message []byte) *edwards25519.Scalar {
	kh := s.sum(R, A, message)
	k, _ := new(edwards25519.Scalar).SetUniformBytes(kh[:])
	return k
}
