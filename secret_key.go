package eddsa

import (
	"crypto/subtle"

	"filippo.io/edwards25519"
)

// SecretKey is a 32-byte EdDSA secret seed. It is never interpreted directly:
// signing uses the ExpandedSecretKey derived from it.
type SecretKey [SECRET_KEY_LENGTH]byte

// SecretKeyFromBytes copies b into a SecretKey.
// Any length other than SECRET_KEY_LENGTH fails with ErrInvalidLength.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	var sk SecretKey
	if len(b) != SECRET_KEY_LENGTH {
		return sk, lengthError("secret key", SECRET_KEY_LENGTH, len(b))
	}
	copy(sk[:], b)
	return sk, nil
}

// Bytes returns a copy of the seed.
func (sk SecretKey) Bytes() []byte {
	out := make([]byte, SECRET_KEY_LENGTH)
	copy(out, sk[:])
	return out
}

// Equal reports whether sk and other hold the same seed, in constant time.
func (sk SecretKey) Equal(other SecretKey) bool {
	return subtle.ConstantTimeCompare(sk[:], other[:]) == 1
}

// ExpandedSecretKey is the signing form of a SecretKey: the clamped scalar a
// and the 32-byte nonce prefix, both taken from digest(seed).
type ExpandedSecretKey struct {
	scheme *Scheme
	key    [scalarLength]byte
	prefix [prefixLength]byte
	scalar *edwards25519.Scalar
}

// ExpandSecretKey derives the ExpandedSecretKey for sk under this scheme's digest.
//
// h = digest(sk); key = clamp(h[0:32]); prefix = h[32:64].
func (s *Scheme) ExpandSecretKey(sk SecretKey) ExpandedSecretKey {
	h := s.sum(sk[:])
	defer wipe(h[:])

	esk := ExpandedSecretKey{scheme: s}
	copy(esk.key[:], h[:scalarLength])
	copy(esk.prefix[:], h[scalarLength:])
	clamp(&esk.key)

	// SetBytesWithClamping reduces the clamped integer modulo L. The result
	// is the same point multiple on the prime order subgroup.
	esk.scalar, _ = new(edwards25519.Scalar).SetBytesWithClamping(esk.key[:])
	return esk
}

// Expand derives the ExpandedSecretKey for sk using SHA-512.
func (sk SecretKey) Expand() ExpandedSecretKey {
	return Ed25519.ExpandSecretKey(sk)
}

// Bytes returns key || prefix (EXPANDED_SECRET_KEY_LENGTH bytes).
func (esk ExpandedSecretKey) Bytes() []byte {
	out := make([]byte, 0, EXPANDED_SECRET_KEY_LENGTH)
	out = append(out, esk.key[:]...)
	return append(out, esk.prefix[:]...)
}

// PublicKey derives compress(a * B) for this expanded key.
func (esk ExpandedSecretKey) PublicKey() PublicKey {
	if esk.scalar == nil {
		return PublicKey{}
	}
	A := new(edwards25519.Point).ScalarBaseMult(esk.scalar)
	pk := PublicKey{point: A}
	copy(pk.compressed[:], A.Bytes())
	return pk
}

// clamp applies RFC 8032 section 5.1.5 pruning in place: clear the low three
// bits, clear the top bit and set the second highest bit.
func clamp(k *[scalarLength]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// wipe zeroes a buffer holding intermediate secret material.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
