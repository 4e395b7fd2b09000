package eddsa

import (
	"crypto/subtle"
)

// Signature is an EdDSA signature: the compressed commitment point R and the
// little-endian scalar S. A Signature may hold a non-canonical S; only
// verification requires S < L.
type Signature struct {
	r [pointLength]byte
	s [scalarLength]byte
}

// SignatureFromBytes splits a 64-byte R || S encoding.
// Any length other than SIGNATURE_LENGTH fails with ErrInvalidLength. No
// cryptographic validation happens here.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SIGNATURE_LENGTH {
		return sig, lengthError("signature", SIGNATURE_LENGTH, len(b))
	}
	copy(sig.r[:], b[:pointLength])
	copy(sig.s[:], b[pointLength:])
	return sig, nil
}

// Bytes returns R || S.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, SIGNATURE_LENGTH)
	out = append(out, sig.r[:]...)
	return append(out, sig.s[:]...)
}

// R returns a copy of the encoded commitment point.
func (sig Signature) R() []byte {
	out := make([]byte, pointLength)
	copy(out, sig.r[:])
	return out
}

// S returns a copy of the encoded scalar.
func (sig Signature) S() []byte {
	out := make([]byte, scalarLength)
	copy(out, sig.s[:])
	return out
}

// Equal reports whether two signatures have identical encodings.
func (sig Signature) Equal(other Signature) bool {
	a, b := sig.Bytes(), other.Bytes()
	return subtle.ConstantTimeCompare(a, b) == 1
}
