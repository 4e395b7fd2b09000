package eddsa

import (
	"fmt"

	cryptoed25519 "github.com/go-i2p/crypto/ed25519"
)

// go-i2p/crypto Interop
//
// github.com/go-i2p/crypto/ed25519 stores private keys in the 64-byte
// seed || public layout, which is exactly KEYPAIR_LENGTH bytes of this
// package's Keypair encoding. These conversions let keys move between the
// two packages. They are only meaningful for the SHA-512 scheme, since
// go-i2p/crypto always signs with SHA-512.

// I2PPrivateKey converts the keypair into a go-i2p/crypto private key.
func (kp *Keypair) I2PPrivateKey() (cryptoed25519.Ed25519PrivateKey, error) {
	priv, err := cryptoed25519.CreateEd25519PrivateKeyFromBytes(kp.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create I2P private key: %w", err)
	}
	return priv, nil
}

// I2PPublicKey converts the public key into a go-i2p/crypto public key.
func (pk PublicKey) I2PPublicKey() (cryptoed25519.Ed25519PublicKey, error) {
	pub, err := cryptoed25519.CreateEd25519PublicKeyFromBytes(pk.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create I2P public key: %w", err)
	}
	return pub, nil
}

// KeypairFromI2P converts a go-i2p/crypto private key into a SHA-512 Keypair.
// The embedded public half is checked against the seed.
func KeypairFromI2P(priv cryptoed25519.Ed25519PrivateKey) (*Keypair, error) {
	if priv == nil {
		return nil, argumentError("I2P private key", "cannot be nil")
	}
	return Ed25519.KeypairFromBytes(priv.Bytes())
}

// PublicKeyFromI2P converts a go-i2p/crypto public key.
func PublicKeyFromI2P(pub cryptoed25519.Ed25519PublicKey) (PublicKey, error) {
	if pub == nil {
		return PublicKey{}, argumentError("I2P public key", "cannot be nil")
	}
	return PublicKeyFromBytes(pub.Bytes())
}
