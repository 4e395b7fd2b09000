package eddsa

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Standard EdDSA Error Types
//
// These errors follow Go 1.13+ error wrapping conventions and can be
// checked using errors.Is(). Decoding and construction failures are wrapped
// with oops so they carry the entity name and the expected/actual sizes;
// verification failures are returned bare so the rejection path stays cheap.

// Sentinel errors for malformed input and failed verification
var (
	// ErrInvalidLength indicates a decode call received a byte slice whose
	// length does not match the fixed width of the entity being decoded.
	ErrInvalidLength = errors.New("eddsa: invalid length")

	// ErrInvalidPoint indicates a 32-byte value does not decompress to a
	// valid, canonically encoded curve point.
	ErrInvalidPoint = errors.New("eddsa: invalid curve point")

	// ErrInvalidSignature indicates the signature scalar S is not reduced
	// modulo the group order, or the verification equation does not hold.
	ErrInvalidSignature = errors.New("eddsa: invalid signature")

	// ErrInvalidDigestLength indicates the configured digest does not produce
	// exactly DIGEST_LENGTH bytes.
	ErrInvalidDigestLength = errors.New("eddsa: digest must produce 64 bytes")

	// ErrKeypairMismatch indicates the public half of an encoded keypair is
	// not the key derived from its secret half.
	ErrKeypairMismatch = errors.New("eddsa: public key does not match secret key")

	// ErrInvalidArgument indicates a nil or otherwise unusable argument was
	// passed to a public API function.
	ErrInvalidArgument = errors.New("eddsa: invalid argument")

	// ErrInvalidEncoding indicates a text or PEM encoding could not be parsed.
	ErrInvalidEncoding = errors.New("eddsa: invalid encoding")

	// ErrEmptyBatch indicates Verify was called on a BatchVerifier with no entries.
	ErrEmptyBatch = errors.New("eddsa: empty batch")

	// ErrUnknownDigest indicates DigestByName was given an unsupported name.
	ErrUnknownDigest = errors.New("eddsa: unknown digest")
)

// lengthError reports a decode of entity that received actual bytes instead of expected.
func lengthError(entity string, expected, actual int) error {
	return oops.
		In("eddsa").
		Code("invalid_length").
		With("entity", entity, "expected", expected, "actual", actual).
		Wrapf(ErrInvalidLength, "%s must be %d bytes, got %d", entity, expected, actual)
}

// pointError reports a 32-byte encoding that is not a canonical curve point.
func pointError(entity, reason string) error {
	return oops.
		In("eddsa").
		Code("invalid_point").
		With("entity", entity, "reason", reason).
		Wrapf(ErrInvalidPoint, "%s: %s", entity, reason)
}

// minLengthError reports an input shorter than the minimum its entity needs.
func minLengthError(entity string, minimum, actual int) error {
	return oops.
		In("eddsa").
		Code("invalid_length").
		With("entity", entity, "minimum", minimum, "actual", actual).
		Wrapf(ErrInvalidLength, "%s must be at least %d bytes, got %d", entity, minimum, actual)
}

// argumentError reports a nil or unusable argument named by arg.
func argumentError(arg, reason string) error {
	return oops.
		In("eddsa").
		Code("invalid_argument").
		With("argument", arg).
		Wrapf(ErrInvalidArgument, "%s %s", arg, reason)
}

// encodingError reports a text or PEM payload that could not be parsed.
// Both ErrInvalidEncoding and cause are reachable through errors.Is and
// errors.As.
func encodingError(entity string, cause error) error {
	return oops.
		In("eddsa").
		Code("invalid_encoding").
		With("entity", entity).
		Wrapf(fmt.Errorf("%w: %w", ErrInvalidEncoding, cause), "%s", entity)
}

// IsVerificationFailure returns true if err reports a signature that was
// well-formed enough to be decoded but did not verify, or whose points or
// scalar were rejected during verification.
// Length errors are not verification failures: they indicate a caller bug.
func IsVerificationFailure(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidSignature) || errors.Is(err, ErrInvalidPoint)
}
