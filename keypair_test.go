package eddsa

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"
	"testing"
)

// rfc8032Vectors are the SHA-512 test vectors 1-3 from RFC 8032 section 7.1.
var rfc8032Vectors = []struct {
	name      string
	secret    string
	public    string
	message   string
	signature string
}{
	{
		name:      "TEST 1",
		secret:    "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		public:    "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		message:   "",
		signature: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		name:      "TEST 2",
		secret:    "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		public:    "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		message:   "72",
		signature: "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
	{
		name:      "TEST 3",
		secret:    "c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7",
		public:    "fc51cd8e6218a1a38da47ed00230f0580816ed13ba3303ac5deb911548908025",
		message:   "af82",
		signature: "6291d657deec24024827e69c3abe01a30ce548a284743a445e3680d7db5ac3ac18ff9b538d16f290ae67f760984dc6594a7c15e9716ed28dc027beceea1ec40a",
	},
}

// TestRFC8032Vectors checks derived public keys and signatures against the published vectors
func TestRFC8032Vectors(t *testing.T) {
	for _, tc := range rfc8032Vectors {
		t.Run(tc.name, func(t *testing.T) {
			sk, err := SecretKeyFromBytes(mustHex(t, tc.secret))
			if err != nil {
				t.Fatalf("Failed to decode secret key: %v", err)
			}
			kp := NewKeypair(sk)

			if !bytes.Equal(kp.PublicKey().Bytes(), mustHex(t, tc.public)) {
				t.Errorf("Public key mismatch:\n got %x\nwant %s", kp.PublicKey().Bytes(), tc.public)
			}

			message := mustHex(t, tc.message)
			sig := kp.Sign(message)
			if !bytes.Equal(sig.Bytes(), mustHex(t, tc.signature)) {
				t.Errorf("Signature mismatch:\n got %x\nwant %s", sig.Bytes(), tc.signature)
			}

			if err := Verify(mustHex(t, tc.public), message, mustHex(t, tc.signature)); err != nil {
				t.Errorf("Published signature failed to verify: %v", err)
			}
		})
	}
}

// TestZeroSeedMatchesStdlib checks the all-zero seed against crypto/ed25519
func TestZeroSeedMatchesStdlib(t *testing.T) {
	var sk SecretKey
	kp := NewKeypair(sk)

	want := ed25519.NewKeyFromSeed(sk[:])
	if !bytes.Equal(kp.PublicKey().Bytes(), want.Public().(ed25519.PublicKey)) {
		t.Errorf("Public key mismatch for zero seed: got %x", kp.PublicKey().Bytes())
	}
	if !bytes.Equal(kp.PublicKey().Bytes(), mustHex(t, "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29")) {
		t.Errorf("Unexpected zero seed public key: %x", kp.PublicKey().Bytes())
	}

	sig := kp.Sign(nil)
	if !bytes.Equal(sig.Bytes(), ed25519.Sign(want, nil)) {
		t.Errorf("Signature mismatch for zero seed: got %x", sig.Bytes())
	}
}

// TestRandomSeedsMatchStdlib cross-checks derivation and signing for random seeds
func TestRandomSeedsMatchStdlib(t *testing.T) {
	for i := 0; i < 32; i++ {
		kp, err := GenerateKeypair(rand.Reader)
		if err != nil {
			t.Fatalf("Failed to generate keypair: %v", err)
		}

		seed := kp.SecretKey()
		ref := ed25519.NewKeyFromSeed(seed[:])
		if !bytes.Equal(kp.Bytes(), ref) {
			t.Fatalf("Keypair encoding differs from stdlib private key for seed %x", seed[:])
		}

		message := make([]byte, i*7)
		rand.Read(message)
		if !bytes.Equal(kp.Sign(message).Bytes(), ed25519.Sign(ref, message)) {
			t.Fatalf("Signature differs from stdlib for seed %x, message length %d", seed[:], len(message))
		}
	}
}

// TestSignVerifyMessageLengths tests signing of empty, short and long messages
func TestSignVerifyMessageLengths(t *testing.T) {
	kp, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("Failed to generate keypair: %v", err)
	}

	for _, n := range []int{0, 1, 2, 63, 64, 65, 1024, 10001, 65536} {
		message := make([]byte, n)
		rand.Read(message)

		sig := kp.Sign(message)
		if err := kp.Verify(message, sig); err != nil {
			t.Errorf("Keypair failed to verify its own signature on %d bytes: %v", n, err)
		}
		if err := kp.PublicKey().Verify(message, sig); err != nil {
			t.Errorf("Public key failed to verify signature on %d bytes: %v", n, err)
		}
		if err := Verify(kp.PublicKey().Bytes(), message, sig.Bytes()); err != nil {
			t.Errorf("Verify failed on %d bytes: %v", n, err)
		}
	}
}

// TestSignDeterministic tests that signing the same message twice gives identical output
func TestSignDeterministic(t *testing.T) {
	kp := seedKeypair(Ed25519, 0x42)
	message := []byte("This is a test of the tsunami alert system.")

	sig1 := kp.Sign(message)
	sig2 := kp.Sign(message)
	if !sig1.Equal(sig2) {
		t.Errorf("Signatures differ:\n%x\n%x", sig1.Bytes(), sig2.Bytes())
	}

	// A keypair rebuilt from the same seed signs identically
	kp2 := NewKeypair(kp.SecretKey())
	if !kp2.Sign(message).Equal(sig1) {
		t.Error("Keypair rebuilt from the same seed produced a different signature")
	}

	// Signing through the expanded key gives the same result
	esk := kp.SecretKey().Expand()
	if !esk.Sign(message, kp.PublicKey()).Equal(sig1) {
		t.Error("ExpandedSecretKey.Sign differs from Keypair.Sign")
	}
}

// TestExpandedSecretKeyClamping checks the clamping invariant on derived scalars
func TestExpandedSecretKeyClamping(t *testing.T) {
	for b := 0; b < 64; b++ {
		kp := seedKeypair(Ed25519, byte(b*3))
		esk := kp.ExpandedSecretKey().Bytes()

		if len(esk) != EXPANDED_SECRET_KEY_LENGTH {
			t.Fatalf("Expected %d expanded bytes, got %d", EXPANDED_SECRET_KEY_LENGTH, len(esk))
		}
		if esk[0]&7 != 0 {
			t.Errorf("Low bits of byte 0 not cleared: %08b", esk[0])
		}
		if esk[31]&0x80 != 0 {
			t.Errorf("High bit of byte 31 not cleared: %08b", esk[31])
		}
		if esk[31]&0x40 == 0 {
			t.Errorf("Second highest bit of byte 31 not set: %08b", esk[31])
		}
	}
}

// TestGenerateKeypairRNGFailure tests that RNG errors are surfaced unchanged
func TestGenerateKeypairRNGFailure(t *testing.T) {
	kp, err := GenerateKeypair(errReader{err: errEntropy})
	if kp != nil {
		t.Error("Expected nil keypair on RNG failure")
	}
	expectErr(t, err, errEntropy)

	// A short read is a failure, not a partially random key
	_, err = GenerateKeypair(bytes.NewReader(make([]byte, SECRET_KEY_LENGTH-1)))
	expectErr(t, err, io.ErrUnexpectedEOF)
}

// TestGenerateKeypairUsesReader tests that the seed comes from the supplied reader
func TestGenerateKeypairUsesReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0xa5}, SECRET_KEY_LENGTH)
	kp, err := GenerateKeypair(bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("Failed to generate keypair: %v", err)
	}
	if !bytes.Equal(kp.SecretKey().Bytes(), seed) {
		t.Errorf("Expected seed %x, got %x", seed, kp.SecretKey().Bytes())
	}
}

// TestKeypairFromBytesMismatch tests that a public half not derived from the secret is rejected
func TestKeypairFromBytesMismatch(t *testing.T) {
	a := seedKeypair(Ed25519, 1)
	b := seedKeypair(Ed25519, 2)

	encoded := append(a.SecretKey().Bytes(), b.PublicKey().Bytes()...)
	_, err := KeypairFromBytes(encoded)
	expectErr(t, err, ErrKeypairMismatch)

	// An invalid public half is reported as an invalid point
	bad := append(a.SecretKey().Bytes(), bytes.Repeat([]byte{0xff}, PUBLIC_KEY_LENGTH)...)
	_, err = KeypairFromBytes(bad)
	expectErr(t, err, ErrInvalidPoint)
}

// TestKeypairStreamRoundTrip tests WriteTo and ReadKeypair
func TestKeypairStreamRoundTrip(t *testing.T) {
	kp := seedKeypair(Ed25519, 9)

	var buf bytes.Buffer
	n, err := kp.WriteTo(&buf)
	if err != nil {
		t.Fatalf("Failed to write keypair: %v", err)
	}
	if n != KEYPAIR_LENGTH {
		t.Errorf("Expected %d bytes written, got %d", KEYPAIR_LENGTH, n)
	}

	// Trailing data stays in the reader
	buf.WriteString("trailer")
	kp2, err := Ed25519.ReadKeypair(&buf)
	if err != nil {
		t.Fatalf("Failed to read keypair: %v", err)
	}
	if !bytes.Equal(kp.Bytes(), kp2.Bytes()) {
		t.Error("Keypair changed across stream round trip")
	}
	if buf.String() != "trailer" {
		t.Errorf("ReadKeypair consumed too much: %q left", buf.String())
	}

	_, err = Ed25519.ReadKeypair(bytes.NewReader(kp.Bytes()[:10]))
	expectErr(t, err, io.ErrUnexpectedEOF)

	_, err = Ed25519.ReadKeypair(nil)
	expectErr(t, err, ErrInvalidArgument)
}

// TestSignAttached tests the message || signature form
func TestSignAttached(t *testing.T) {
	kp := seedKeypair(Ed25519, 5)
	message := []byte("Hello, I2P anonymous network!")

	signed := kp.SignAttached(message)
	if len(signed) != len(message)+SIGNATURE_LENGTH {
		t.Fatalf("Expected %d bytes, got %d", len(message)+SIGNATURE_LENGTH, len(signed))
	}

	opened, err := Ed25519.OpenAttached(kp.PublicKey(), signed)
	if err != nil {
		t.Fatalf("Failed to open signed message: %v", err)
	}
	if !bytes.Equal(opened, message) {
		t.Errorf("Expected %q, got %q", message, opened)
	}

	signed[0] ^= 1
	_, err = Ed25519.OpenAttached(kp.PublicKey(), signed)
	expectErr(t, err, ErrInvalidSignature)

	_, err = Ed25519.OpenAttached(kp.PublicKey(), signed[:SIGNATURE_LENGTH-1])
	expectErr(t, err, ErrInvalidLength)
}

// TestKeypairConcurrentSign tests that a shared keypair signs consistently across goroutines
func TestKeypairConcurrentSign(t *testing.T) {
	kp := seedKeypair(Ed25519, 77)
	message := []byte("concurrent")
	want := kp.Sign(message)

	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			sig := kp.Sign(message)
			if !sig.Equal(want) {
				errs <- errors.New("signature differs")
				return
			}
			errs <- kp.Verify(message, sig)
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent sign/verify failed: %v", err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	kp := seedKeypair(Ed25519, 1)
	message := []byte("Hello, world!")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		kp.Sign(message)
	}
}

func BenchmarkVerify(b *testing.B) {
	kp := seedKeypair(Ed25519, 1)
	message := []byte("Hello, world!")
	sig := kp.Sign(message)
	pub := kp.PublicKey()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Ed25519.Verify(pub, message, sig); err != nil {
			b.Fatal(err)
		}
	}
}

// TestZeroValueKeypair tests that an unset Keypair neither panics nor
// produces a signature that verifies
func TestZeroValueKeypair(t *testing.T) {
	var kp Keypair
	message := []byte("zero value")

	if kp.Scheme() != Ed25519 {
		t.Error("Zero-value Keypair should report the Ed25519 scheme")
	}

	sig := kp.Sign(message)
	if bytes.Equal(sig.Bytes(), make([]byte, SIGNATURE_LENGTH)) {
		t.Error("Zero-value Keypair produced an all-zero signature")
	}
	expectErr(t, kp.Verify(message, sig), ErrInvalidSignature)

	// The placeholder signature fails under a real key too
	other := seedKeypair(Ed25519, 70)
	expectErr(t, other.Verify(message, sig), ErrInvalidSignature)
	if ed25519.Verify(other.PublicKey().Bytes(), message, sig.Bytes()) {
		t.Error("crypto/ed25519 accepted the placeholder signature")
	}

	// A real signature fails against the missing public key
	expectErr(t, kp.Verify(message, other.Sign(message)), ErrInvalidPoint)

	_, err := Ed25519.OpenAttached(other.PublicKey(), kp.SignAttached(message))
	expectErr(t, err, ErrInvalidSignature)

	var esk ExpandedSecretKey
	if !esk.Sign(message, other.PublicKey()).Equal(sig) {
		t.Error("Zero-value ExpandedSecretKey should return the same placeholder signature")
	}
}
