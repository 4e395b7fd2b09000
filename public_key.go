package eddsa

import (
	"crypto/subtle"

	"filippo.io/edwards25519"
)

// PublicKey is a compressed Edwards point A together with its decompressed
// form. The zero value is not a valid key; verification against it fails
// with ErrInvalidPoint.
type PublicKey struct {
	compressed [PUBLIC_KEY_LENGTH]byte
	point      *edwards25519.Point
}

// PublicKeyFromBytes decodes a 32-byte compressed point.
//
// Any length other than PUBLIC_KEY_LENGTH fails with ErrInvalidLength.
// Encodings that do not decompress, and non-canonical encodings of valid
// points, fail with ErrInvalidPoint.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PUBLIC_KEY_LENGTH {
		return PublicKey{}, lengthError("public key", PUBLIC_KEY_LENGTH, len(b))
	}

	A, err := decodePoint(b)
	if err != nil {
		return PublicKey{}, pointError("public key", err.Error())
	}

	pk := PublicKey{point: A}
	copy(pk.compressed[:], b)
	return pk, nil
}

// Bytes returns a copy of the compressed encoding.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, PUBLIC_KEY_LENGTH)
	copy(out, pk.compressed[:])
	return out
}

// Equal reports whether pk and other have the same encoding.
func (pk PublicKey) Equal(other PublicKey) bool {
	return subtle.ConstantTimeCompare(pk.compressed[:], other.compressed[:]) == 1
}

// IsValid reports whether pk was produced by derivation or a successful decode.
func (pk PublicKey) IsValid() bool {
	return pk.point != nil
}

// IsSmallOrder reports whether A lies in the torsion subgroup of order 8.
// Such keys verify signatures on many messages at once and are rejected by
// VerifyStrict.
func (pk PublicKey) IsSmallOrder() bool {
	if pk.point == nil {
		return false
	}
	return isSmallOrder(pk.point)
}

// Verify checks sig over message with the default SHA-512 scheme.
func (pk PublicKey) Verify(message []byte, sig Signature) error {
	return Ed25519.Verify(pk, message, sig)
}

// decodeError is the reason carried by ErrInvalidPoint failures.
type decodeError string

func (e decodeError) Error() string { return string(e) }

const (
	errNotOnCurve   decodeError = "not a point on the curve"
	errNonCanonical decodeError = "non-canonical point encoding"
)

// decodePoint decompresses b and requires it to be the canonical encoding.
//
// edwards25519.Point.SetBytes accepts y coordinates in [p, 2^255) and the
// negative zero x coordinate. Re-encoding the decoded point and comparing it
// to the input rejects both.
func decodePoint(b []byte) (*edwards25519.Point, error) {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, errNotOnCurve
	}
	if subtle.ConstantTimeCompare(p.Bytes(), b) != 1 {
		return nil, errNonCanonical
	}
	return p, nil
}

// isSmallOrder reports whether [8]p is the identity.
func isSmallOrder(p *edwards25519.Point) bool {
	cleared := new(edwards25519.Point).MultByCofactor(p)
	return cleared.Equal(edwards25519.NewIdentityPoint()) == 1
}
