package eddsa

import (
	"bytes"
	"testing"

	cryptoed25519 "github.com/go-i2p/crypto/ed25519"
)

// TestI2PSignerInterop tests signatures across this package and go-i2p/crypto
func TestI2PSignerInterop(t *testing.T) {
	kp := seedKeypair(Ed25519, 60)
	message := []byte("Hello, I2P anonymous network!")

	priv, err := kp.I2PPrivateKey()
	if err != nil {
		t.Fatalf("Failed to convert keypair: %v", err)
	}
	signer, err := priv.NewSigner()
	if err != nil {
		t.Fatalf("Failed to create signer: %v", err)
	}
	i2pSig, err := signer.SignHash(message)
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}
	if err := Verify(kp.PublicKey().Bytes(), message, i2pSig); err != nil {
		t.Errorf("go-i2p/crypto signature rejected: %v", err)
	}

	pub, err := kp.PublicKey().I2PPublicKey()
	if err != nil {
		t.Fatalf("Failed to convert public key: %v", err)
	}
	verifier, err := pub.NewVerifier()
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}
	if err := verifier.VerifyHash(message, kp.Sign(message).Bytes()); err != nil {
		t.Errorf("go-i2p/crypto rejected our signature: %v", err)
	}
}

// TestI2PKeyConversion tests conversions from go-i2p/crypto keys
func TestI2PKeyConversion(t *testing.T) {
	pubPtr, privPtr, err := cryptoed25519.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("Failed to generate I2P keypair: %v", err)
	}

	kp, err := KeypairFromI2P(*privPtr)
	if err != nil {
		t.Fatalf("Failed to convert I2P private key: %v", err)
	}
	if !bytes.Equal(kp.PublicKey().Bytes(), pubPtr.Bytes()) {
		t.Error("Derived public key differs from the I2P public key")
	}

	pub, err := PublicKeyFromI2P(*pubPtr)
	if err != nil {
		t.Fatalf("Failed to convert I2P public key: %v", err)
	}
	if !pub.Equal(kp.PublicKey()) {
		t.Error("Converted public key differs")
	}

	back, err := kp.I2PPrivateKey()
	if err != nil {
		t.Fatalf("Failed to convert back: %v", err)
	}
	if !bytes.Equal(back.Bytes(), privPtr.Bytes()) {
		t.Error("Private key changed across conversion")
	}

	_, err = KeypairFromI2P(nil)
	expectErr(t, err, ErrInvalidArgument)
	_, err = PublicKeyFromI2P(nil)
	expectErr(t, err, ErrInvalidArgument)
}
