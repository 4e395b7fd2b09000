package eddsa

import (
	"crypto/ed25519"
	"encoding/pem"
	"fmt"

	"go.step.sm/crypto/pemutil"
)

// PEM Encodings
//
// Keypairs serialize as PKCS#8 "PRIVATE KEY" blocks and public keys as
// SubjectPublicKeyInfo "PUBLIC KEY" blocks, using the Ed25519 OID. PKCS#8
// stores only the 32-byte seed, so decoding re-derives the public key under
// the caller's scheme. Keys from a non-SHA-512 scheme round-trip through PEM
// only when decoded with the same scheme.

// MarshalPEM encodes the keypair's seed as a PKCS#8 PEM block.
func (kp *Keypair) MarshalPEM() ([]byte, error) {
	priv := ed25519.PrivateKey(kp.Bytes())
	defer wipe(priv)

	block, err := pemutil.Serialize(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize keypair: %w", err)
	}
	return pem.EncodeToMemory(block), nil
}

// MarshalPEM encodes the public key as a SubjectPublicKeyInfo PEM block.
func (pk PublicKey) MarshalPEM() ([]byte, error) {
	if pk.point == nil {
		return nil, argumentError("public key", "is the zero value")
	}

	block, err := pemutil.Serialize(ed25519.PublicKey(pk.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize public key: %w", err)
	}
	return pem.EncodeToMemory(block), nil
}

// KeypairFromPEM decodes a PKCS#8 Ed25519 private key and derives the keypair
// under this scheme.
func (s *Scheme) KeypairFromPEM(data []byte) (*Keypair, error) {
	key, err := pemutil.ParseKey(data)
	if err != nil {
		return nil, encodingError("keypair PEM", err)
	}

	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, encodingError("keypair PEM", fmt.Errorf("unexpected key type %T", key))
	}

	sk, err := SecretKeyFromBytes(priv.Seed())
	if err != nil {
		return nil, err
	}
	return s.NewKeypair(sk), nil
}

// KeypairFromPEM decodes a PKCS#8 Ed25519 private key with the SHA-512 scheme.
func KeypairFromPEM(data []byte) (*Keypair, error) {
	return Ed25519.KeypairFromPEM(data)
}

// PublicKeyFromPEM decodes a SubjectPublicKeyInfo Ed25519 public key.
func PublicKeyFromPEM(data []byte) (PublicKey, error) {
	key, err := pemutil.ParseKey(data)
	if err != nil {
		return PublicKey{}, encodingError("public key PEM", err)
	}

	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return PublicKey{}, encodingError("public key PEM", fmt.Errorf("unexpected key type %T", key))
	}
	return PublicKeyFromBytes(pub)
}
