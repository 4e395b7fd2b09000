package eddsa

import (
	"crypto/sha256"

	"github.com/go-i2p/common/base32"
	"github.com/go-i2p/common/base64"
)

// Text Encodings
//
// Public keys and signatures marshal to text with the I2P base64 alphabet
// ("-" and "~" in place of "+" and "/"), matching how destinations and keys
// are written elsewhere in the go-i2p ecosystem. Secret material has no text
// form here; use MarshalPEM for that.

// String returns the I2P base64 encoding of the public key.
func (pk PublicKey) String() string {
	return base64.EncodeToString(pk.compressed[:])
}

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded bytes go
// through PublicKeyFromBytes, so length and point validation apply.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	decoded, err := PublicKeyFromBase64(string(text))
	if err != nil {
		return err
	}
	*pk = decoded
	return nil
}

// PublicKeyFromBase64 decodes an I2P base64 public key.
func PublicKeyFromBase64(s string) (PublicKey, error) {
	raw, err := base64.DecodeString(s)
	if err != nil {
		return PublicKey{}, encodingError("public key base64", err)
	}
	return PublicKeyFromBytes(raw)
}

// Fingerprint returns the I2P base32 encoding of SHA-256(A), the same
// construction I2P uses for .b32 addresses.
func (pk PublicKey) Fingerprint() string {
	hash := sha256.Sum256(pk.compressed[:])
	return base32.EncodeToString(hash[:])
}

// String returns the I2P base64 encoding of R || S.
func (sig Signature) String() string {
	return base64.EncodeToString(sig.Bytes())
}

// MarshalText implements encoding.TextMarshaler.
func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sig *Signature) UnmarshalText(text []byte) error {
	decoded, err := SignatureFromBase64(string(text))
	if err != nil {
		return err
	}
	*sig = decoded
	return nil
}

// SignatureFromBase64 decodes an I2P base64 signature.
func SignatureFromBase64(s string) (Signature, error) {
	raw, err := base64.DecodeString(s)
	if err != nil {
		return Signature{}, encodingError("signature base64", err)
	}
	return SignatureFromBytes(raw)
}

// Binary Encodings
//
// MarshalBinary produces the fixed-width encoding of each type and
// UnmarshalBinary decodes through the matching *FromBytes, so length and
// point checks apply. A failed UnmarshalBinary leaves the receiver unchanged.

// MarshalBinary implements encoding.BinaryMarshaler.
func (sk SecretKey) MarshalBinary() ([]byte, error) {
	return sk.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	decoded, err := SecretKeyFromBytes(data)
	if err != nil {
		return err
	}
	*sk = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	return pk.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	decoded, err := PublicKeyFromBytes(data)
	if err != nil {
		return err
	}
	*pk = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sig Signature) MarshalBinary() ([]byte, error) {
	return sig.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	decoded, err := SignatureFromBytes(data)
	if err != nil {
		return err
	}
	*sig = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the secret || public
// layout of Bytes.
func (kp *Keypair) MarshalBinary() ([]byte, error) {
	return kp.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The keypair is
// derived under the receiver's scheme, Ed25519 for a zero value, and the
// public half must match the secret half.
func (kp *Keypair) UnmarshalBinary(data []byte) error {
	decoded, err := kp.scheme.orDefault().KeypairFromBytes(data)
	if err != nil {
		return err
	}
	*kp = *decoded
	return nil
}
