package eddsa

import (
	"encoding/hex"
	"errors"
	"testing"
)

// groupOrderLE is L = 2^252 + 27742317777372353535851937790883648493, little endian.
var groupOrderLE = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// identityEncoding is the canonical encoding of the neutral element (x=0, y=1).
var identityEncoding = [32]byte{0x01}

// mustHex decodes a hex string or fails the test.
func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("Failed to decode hex %q: %v", s, err)
	}
	return b
}

// seedKeypair derives a deterministic keypair whose seed is filled with b.
func seedKeypair(s *Scheme, b byte) *Keypair {
	var sk SecretKey
	for i := range sk {
		sk[i] = b + byte(i)
	}
	return s.NewKeypair(sk)
}

// addLE returns a + b as 32-byte little-endian integers, dropping the final carry.
func addLE(a, b []byte) []byte {
	out := make([]byte, 32)
	carry := 0
	for i := 0; i < 32; i++ {
		sum := int(a[i]) + int(b[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

// errReader is an io.Reader that always fails.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

var errEntropy = errors.New("entropy source exhausted")

// expectErr fails the test unless errors.Is(err, target).
func expectErr(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("Expected error %v, got %v", target, err)
	}
}
