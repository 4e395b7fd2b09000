package eddsa

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Keypair holds a SecretKey and the PublicKey derived from it under one
// Scheme. The expanded signing key is cached so Sign does not rehash the seed.
//
// A Keypair is immutable after construction and safe for concurrent use.
type Keypair struct {
	scheme   *Scheme
	secret   SecretKey
	public   PublicKey
	expanded ExpandedSecretKey
}

// GenerateKeypair draws a fresh SecretKey from rng and derives its PublicKey.
// A nil rng uses crypto/rand.Reader. Errors from rng are returned wrapped and
// are not retried.
func (s *Scheme) GenerateKeypair(rng io.Reader) (*Keypair, error) {
	if rng == nil {
		rng = rand.Reader
	}

	var sk SecretKey
	if _, err := io.ReadFull(rng, sk[:]); err != nil {
		log.Errorf("Failed to read %d bytes of key material: %v", SECRET_KEY_LENGTH, err)
		return nil, fmt.Errorf("failed to generate secret key: %w", err)
	}

	kp := s.NewKeypair(sk)
	wipe(sk[:])
	return kp, nil
}

// NewKeypair derives the keypair for an existing SecretKey.
func (s *Scheme) NewKeypair(sk SecretKey) *Keypair {
	expanded := s.ExpandSecretKey(sk)
	return &Keypair{
		scheme:   s,
		secret:   sk,
		public:   expanded.PublicKey(),
		expanded: expanded,
	}
}

// KeypairFromBytes decodes secret || public (KEYPAIR_LENGTH bytes).
//
// The public half must be a canonical point (ErrInvalidPoint) and must equal
// the key derived from the secret half under this scheme (ErrKeypairMismatch).
func (s *Scheme) KeypairFromBytes(b []byte) (*Keypair, error) {
	if len(b) != KEYPAIR_LENGTH {
		return nil, lengthError("keypair", KEYPAIR_LENGTH, len(b))
	}

	sk, err := SecretKeyFromBytes(b[:SECRET_KEY_LENGTH])
	if err != nil {
		return nil, err
	}
	pub, err := PublicKeyFromBytes(b[SECRET_KEY_LENGTH:])
	if err != nil {
		return nil, err
	}

	kp := s.NewKeypair(sk)
	if !kp.public.Equal(pub) {
		log.Warnf("Rejected keypair: encoded public key %x does not match its secret key", pub.Bytes())
		return nil, ErrKeypairMismatch
	}
	return kp, nil
}

// ReadKeypair reads exactly KEYPAIR_LENGTH bytes from r and decodes them
// with KeypairFromBytes.
func (s *Scheme) ReadKeypair(r io.Reader) (*Keypair, error) {
	if r == nil {
		return nil, argumentError("reader", "cannot be nil")
	}

	buf := make([]byte, KEYPAIR_LENGTH)
	defer wipe(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read keypair: %w", err)
	}
	return s.KeypairFromBytes(buf)
}

// WriteTo writes secret || public to w. It implements io.WriterTo.
func (kp *Keypair) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, argumentError("writer", "cannot be nil")
	}

	buf := kp.Bytes()
	defer wipe(buf)
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write keypair: %w", err)
	}
	return int64(n), nil
}

// Sign creates the deterministic signature of message. A zero-value Keypair
// returns a signature that never verifies; see ExpandedSecretKey.Sign.
func (kp *Keypair) Sign(message []byte) Signature {
	return kp.expanded.Sign(message, kp.public)
}

// SignAttached returns message || signature.
func (kp *Keypair) SignAttached(message []byte) []byte {
	sig := kp.Sign(message)
	out := make([]byte, 0, len(message)+SIGNATURE_LENGTH)
	out = append(out, message...)
	return append(out, sig.Bytes()...)
}

// Verify checks sig over message against this keypair's public key.
func (kp *Keypair) Verify(message []byte, sig Signature) error {
	return kp.scheme.Verify(kp.public, message, sig)
}

// Bytes returns secret || public.
func (kp *Keypair) Bytes() []byte {
	out := make([]byte, 0, KEYPAIR_LENGTH)
	out = append(out, kp.secret[:]...)
	return append(out, kp.public.compressed[:]...)
}

// SecretKey returns a copy of the seed.
func (kp *Keypair) SecretKey() SecretKey {
	return kp.secret
}

// PublicKey returns the public half.
func (kp *Keypair) PublicKey() PublicKey {
	return kp.public
}

// ExpandedSecretKey returns the cached signing key.
func (kp *Keypair) ExpandedSecretKey() ExpandedSecretKey {
	return kp.expanded
}

// Scheme returns the scheme the keypair was derived under, Ed25519 for a
// zero-value Keypair.
func (kp *Keypair) Scheme() *Scheme {
	return kp.scheme.orDefault()
}

// OpenAttached splits signed (message || signature), verifies it against pub
// and returns the message.
func (s *Scheme) OpenAttached(pub PublicKey, signed []byte) ([]byte, error) {
	if len(signed) < SIGNATURE_LENGTH {
		return nil, minLengthError("signed message", SIGNATURE_LENGTH, len(signed))
	}

	messageLen := len(signed) - SIGNATURE_LENGTH
	message := signed[:messageLen]
	sig, err := SignatureFromBytes(signed[messageLen:])
	if err != nil {
		return nil, err
	}
	if err := s.Verify(pub, message, sig); err != nil {
		return nil, err
	}
	return message, nil
}

// GenerateKeypair generates a keypair with the SHA-512 scheme.
func GenerateKeypair(rng io.Reader) (*Keypair, error) {
	return Ed25519.GenerateKeypair(rng)
}

// NewKeypair derives a keypair from sk with the SHA-512 scheme.
func NewKeypair(sk SecretKey) *Keypair {
	return Ed25519.NewKeypair(sk)
}

// KeypairFromBytes decodes a keypair with the SHA-512 scheme.
func KeypairFromBytes(b []byte) (*Keypair, error) {
	return Ed25519.KeypairFromBytes(b)
}
