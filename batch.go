package eddsa

import (
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/samber/oops"
)

// BatchVerifier accumulates (public key, message, signature) entries with Add
// and checks all of them at once with Verify.
//
// Batch verification uses the cofactored equation
//
//	[8]([-sum(z_i * S_i)]B + sum([z_i]R_i) + sum([z_i * k_i]A_i)) = 0
//
// with random 128-bit z_i. A signature with a small-order component can pass
// the cofactored check while failing Scheme.Verify, so a batch result is at
// least as permissive as verifying each entry individually.
//
// The zero value is an empty batch under the Ed25519 scheme. A BatchVerifier
// is not safe for concurrent use.
type BatchVerifier struct {
	scheme  *Scheme
	entries []batchEntry
}

// batchEntry holds the decoded values of one Add call. good is false if any
// component failed to decode; the batch then fails as a whole.
type batchEntry struct {
	good bool
	A    *edwards25519.Point
	R    *edwards25519.Point
	S    *edwards25519.Scalar
	k    *edwards25519.Scalar
}

// NewBatchVerifier creates an empty BatchVerifier bound to this scheme.
func (s *Scheme) NewBatchVerifier() *BatchVerifier {
	return &BatchVerifier{scheme: s}
}

// NewPreallocatedBatchVerifier creates a BatchVerifier with room for size entries.
func (s *Scheme) NewPreallocatedBatchVerifier(size int) *BatchVerifier {
	return &BatchVerifier{scheme: s, entries: make([]batchEntry, 0, size)}
}

// Add appends an entry. It retains no reference to its arguments: the
// challenge is computed immediately.
func (v *BatchVerifier) Add(pub PublicKey, message []byte, sig Signature) {
	e := batchEntry{}
	defer func() { v.entries = append(v.entries, e) }()

	if pub.point == nil {
		return
	}
	S, err := new(edwards25519.Scalar).SetCanonicalBytes(sig.s[:])
	if err != nil {
		return
	}
	R, err := decodePoint(sig.r[:])
	if err != nil {
		return
	}

	e.A = pub.point
	e.R = R
	e.S = S
	e.k = v.scheme.challenge(sig.r[:], pub.compressed[:], message)
	e.good = true
}

// Len returns the number of entries added so far.
func (v *BatchVerifier) Len() int {
	return len(v.entries)
}

// Verify checks every entry. It returns nil if all entries are valid,
// ErrEmptyBatch if nothing was added and ErrInvalidSignature otherwise.
// On failure it is unknown which entry was bad; callers must verify entries
// individually to find out.
//
// rng supplies the 128-bit blinding coefficients. A nil rng uses
// crypto/rand.Reader. Errors from rand are returned wrapped.
func (v *BatchVerifier) Verify(rng io.Reader) error {
	n := len(v.entries)
	if n == 0 {
		return ErrEmptyBatch
	}
	if rng == nil {
		rng = rand.Reader
	}

	svals := make([]edwards25519.Scalar, 1+n+n)
	scalars := make([]*edwards25519.Scalar, 1+n+n)
	for i := range scalars {
		scalars[i] = &svals[i]
	}
	Bcoeff := scalars[0]
	Rcoeffs := scalars[1 : 1+n]
	Acoeffs := scalars[1+n:]

	points := make([]*edwards25519.Point, 1+n+n)
	points[0] = edwards25519.NewGeneratorPoint()
	Rs := points[1 : 1+n]
	As := points[1+n:]

	buf := make([]byte, scalarLength)
	for i, e := range v.entries {
		if !e.good {
			log.Debugf("Batch rejected: entry %d failed to decode", i)
			return ErrInvalidSignature
		}
		Rs[i] = e.R
		As[i] = e.A

		// z_i: 128 random bits, always canonical
		if _, err := io.ReadFull(rng, buf[:16]); err != nil {
			log.Errorf("Batch verification could not read randomness: %v", err)
			return fmt.Errorf("failed to read batch coefficients: %w", err)
		}
		if _, err := Rcoeffs[i].SetCanonicalBytes(buf); err != nil {
			return ErrInvalidSignature
		}

		Bcoeff.MultiplyAdd(Rcoeffs[i], e.S, Bcoeff)
		Acoeffs[i].Multiply(Rcoeffs[i], e.k)
	}
	Bcoeff.Negate(Bcoeff)

	check := new(edwards25519.Point).VarTimeMultiScalarMult(scalars, points)
	check.MultByCofactor(check)
	if check.Equal(edwards25519.NewIdentityPoint()) != 1 {
		log.Debugf("Batch rejected: batch equation does not hold for %d entries", n)
		return ErrInvalidSignature
	}
	return nil
}

// VerifyBatch checks len(pubs) signatures at once with the SHA-512 scheme.
// The three slices must have equal length.
func VerifyBatch(pubs []PublicKey, messages [][]byte, sigs []Signature) error {
	if len(pubs) != len(messages) || len(pubs) != len(sigs) {
		return oops.
			In("eddsa").
			Code("invalid_argument").
			With("pubs", len(pubs), "messages", len(messages), "sigs", len(sigs)).
			Wrapf(ErrInvalidArgument, "batch slices have lengths %d, %d, %d", len(pubs), len(messages), len(sigs))
	}
	bv := Ed25519.NewPreallocatedBatchVerifier(len(pubs))
	for i := range pubs {
		bv.Add(pubs[i], messages[i], sigs[i])
	}
	return bv.Verify(nil)
}
