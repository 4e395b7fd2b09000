package eddsa

import (
	"filippo.io/edwards25519"
)

// Signature Verification Methods
//
// This file implements EdDSA signature verification.
// Delegates all point and scalar arithmetic to filippo.io/edwards25519.
//
// Verification modes:
//   - Verify: RFC 8032 section 5.1.7 with canonical S, R and A, cofactorless
//     equation [S]B = R + [k]A.
//   - VerifyStrict: Verify, plus rejection of small-order A and R.
//   - BatchVerifier (batch.go): cofactored equation over many signatures.
//
// Every input to verification is public, so the variable-time double scalar
// multiplication is used for speed.

// Verify checks that sig is a valid signature of message under pub.
//
// It returns nil on success, ErrInvalidSignature if S is not reduced modulo L
// or the verification equation does not hold, and ErrInvalidPoint if R (or a
// zero-value pub) is not a canonical curve point. All checks are evaluated
// before the first failure is reported, so every rejected signature takes
// the same path through the arithmetic.
func (s *Scheme) Verify(pub PublicKey, message []byte, sig Signature) error {
	ok, sErr, pointErr := s.verify(pub, message, sig)
	return verificationResult(ok, sErr, pointErr)
}

// VerifyBytes decodes pub and sig from their fixed-width encodings and then
// calls Verify. Length errors are reported with ErrInvalidLength before any
// cryptographic work.
func (s *Scheme) VerifyBytes(pub, message, sig []byte) error {
	pk, err := PublicKeyFromBytes(pub)
	if err != nil {
		return err
	}
	signature, err := SignatureFromBytes(sig)
	if err != nil {
		return err
	}
	return s.Verify(pk, message, signature)
}

// VerifyStrict is Verify with two additional checks: the public key and the
// commitment R must not be small-order points. This rejects the weak keys and
// signatures for which one (R, S) validates many messages.
func (s *Scheme) VerifyStrict(pub PublicKey, message []byte, sig Signature) error {
	ok, sErr, pointErr := s.verify(pub, message, sig)

	weak := pub.point != nil && isSmallOrder(pub.point)
	if R, err := decodePoint(sig.r[:]); err == nil && isSmallOrder(R) {
		weak = true
	}

	if pointErr == nil && weak {
		pointErr = pointError("signature", "small order point")
	}
	return verificationResult(ok, sErr, pointErr)
}

// verify evaluates the verification equation. Decode failures substitute the
// zero scalar or the identity point so the arithmetic always runs; they are
// reported through sErr and pointErr.
func (s *Scheme) verify(pub PublicKey, message []byte, sig Signature) (ok bool, sErr, pointErr error) {
	// 1. S must be canonical (S < L)
	S, err := new(edwards25519.Scalar).SetCanonicalBytes(sig.s[:])
	if err != nil {
		sErr = ErrInvalidSignature
		S = edwards25519.NewScalar()
	}

	// 2. R and A must be canonical points
	R, err := decodePoint(sig.r[:])
	if err != nil {
		pointErr = ErrInvalidPoint
		R = edwards25519.NewIdentityPoint()
	}
	A := pub.point
	if A == nil {
		pointErr = ErrInvalidPoint
		A = edwards25519.NewIdentityPoint()
	}

	// 3. k = digest(R || A || M) mod L
	k := s.challenge(sig.r[:], pub.compressed[:], message)

	// 4. [S]B - [k]A == R
	minusA := new(edwards25519.Point).Negate(A)
	check := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, S)

	return check.Equal(R) == 1, sErr, pointErr
}

// verificationResult orders the failure reasons: a non-canonical S first,
// then invalid points, then a failed equation.
func verificationResult(ok bool, sErr, pointErr error) error {
	switch {
	case sErr != nil:
		log.Debugf("Signature rejected: non-canonical scalar")
		return sErr
	case pointErr != nil:
		log.Debugf("Signature rejected: %v", pointErr)
		return pointErr
	case !ok:
		log.Debugf("Signature rejected: verification equation does not hold")
		return ErrInvalidSignature
	}
	return nil
}

// Verify checks sig over message under pub with the SHA-512 scheme.
// pub and sig are the raw PUBLIC_KEY_LENGTH and SIGNATURE_LENGTH encodings.
func Verify(pub, message, sig []byte) error {
	return Ed25519.VerifyBytes(pub, message, sig)
}

// SignatureVerifier is an interface for signature verification operations.
// Implementations verify signatures made by one fixed public key.
type SignatureVerifier interface {
	// Verify verifies a signature against a message
	Verify(message, signature []byte) error

	// PublicKey returns the key signatures are checked against
	PublicKey() PublicKey
}

// Verifier implements SignatureVerifier for one public key under one scheme.
// A zero-value Verifier has no key and rejects every signature with
// ErrInvalidPoint.
type Verifier struct {
	scheme *Scheme
	pub    PublicKey
	strict bool
}

// NewVerifier creates a Verifier from public key bytes.
func (s *Scheme) NewVerifier(pubKeyBytes []byte) (*Verifier, error) {
	pub, err := PublicKeyFromBytes(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	return &Verifier{scheme: s, pub: pub}, nil
}

// NewStrictVerifier creates a Verifier that uses VerifyStrict.
func (s *Scheme) NewStrictVerifier(pubKeyBytes []byte) (*Verifier, error) {
	v, err := s.NewVerifier(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	v.strict = true
	return v, nil
}

// Verify verifies a SIGNATURE_LENGTH-byte signature over message.
func (v *Verifier) Verify(message, signature []byte) error {
	sig, err := SignatureFromBytes(signature)
	if err != nil {
		return err
	}
	if v.strict {
		return v.scheme.VerifyStrict(v.pub, message, sig)
	}
	return v.scheme.Verify(v.pub, message, sig)
}

// PublicKey returns the verifier's key.
func (v *Verifier) PublicKey() PublicKey {
	return v.pub
}
