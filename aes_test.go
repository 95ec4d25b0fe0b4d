package aes

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/bits"
	"testing"
)

// knownAnswerTests holds the standard single-block vectors for all three key
// sizes: FIPS 197 Appendix B and C, the all-zero vectors, and a selection of
// the NIST SP 800-38A ECB examples.
var knownAnswerTests = []struct {
	name string
	key  string
	pt   string
	ct   string
}{
	{
		"AES-128_zero",
		"00000000000000000000000000000000",
		"00000000000000000000000000000000",
		"66e94bd4ef8a2c3b884cfa59ca342b2e",
	},
	{
		"AES-192_zero",
		"000000000000000000000000000000000000000000000000",
		"00000000000000000000000000000000",
		"aae06992acbf52a3e8f4a96ec9300bd7",
	},
	{
		"AES-256_zero",
		"0000000000000000000000000000000000000000000000000000000000000000",
		"00000000000000000000000000000000",
		"dc95c078a2408989ad48a21492842087",
	},
	{
		"AES-128_fips197_c1",
		"000102030405060708090a0b0c0d0e0f",
		"00112233445566778899aabbccddeeff",
		"69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		"AES-192_fips197_c2",
		"000102030405060708090a0b0c0d0e0f1011121314151617",
		"00112233445566778899aabbccddeeff",
		"dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		"AES-256_fips197_c3",
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		"00112233445566778899aabbccddeeff",
		"8ea2b7ca516745bfeafc49904b496089",
	},
	{
		"AES-128_fips197_b",
		"2b7e151628aed2a6abf7158809cf4f3c",
		"3243f6a8885a308d313198a2e0370734",
		"3925841d02dc09fbdc118597196a0b32",
	},
	{
		"AES-128_sp800-38a_ecb1",
		"2b7e151628aed2a6abf7158809cf4f3c",
		"6bc1bee22e409f96e93d7e117393172a",
		"3ad77bb40d7a3660a89ecaf32466ef97",
	},
	{
		"AES-128_sp800-38a_ecb2",
		"2b7e151628aed2a6abf7158809cf4f3c",
		"ae2d8a571e03ac9c9eb76fac45af8e51",
		"f5d3d58503b9699de785895a96fdbaaf",
	},
	{
		"AES-192_sp800-38a_ecb1",
		"8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
		"6bc1bee22e409f96e93d7e117393172a",
		"bd334f1d6e45f25ff712a214571fa5cc",
	},
	{
		"AES-256_sp800-38a_ecb1",
		"603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
		"6bc1bee22e409f96e93d7e117393172a",
		"f3eed1bdb5d2a03c064b5a7e3db181f8",
	},
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test vector: %v", err)
	}
	return b
}

// TestKnownAnswerVectors checks the generic cipher against the published
// single-block vectors and verifies the decryption path inverts each one.
func TestKnownAnswerVectors(t *testing.T) {
	for _, tc := range knownAnswerTests {
		t.Run(tc.name, func(t *testing.T) {
			key := mustHex(t, tc.key)
			pt := mustHex(t, tc.pt)
			want := mustHex(t, tc.ct)

			c, err := NewCipher(key)
			if err != nil {
				t.Fatalf("NewCipher: %v", err)
			}

			ct := make([]byte, BlockSize)
			c.Encrypt(ct, pt)
			if !bytes.Equal(ct, want) {
				t.Errorf("Encrypt = %x, want %x", ct, want)
			}

			back := make([]byte, BlockSize)
			c.Decrypt(back, ct)
			if !bytes.Equal(back, pt) {
				t.Errorf("Decrypt = %x, want %x", back, pt)
			}
		})
	}
}

// TestFixedSizeContexts runs the same vectors through the typed contexts,
// exercising SetEncryptKey and SetDecryptKey separately.
func TestFixedSizeContexts(t *testing.T) {
	for _, tc := range knownAnswerTests {
		t.Run(tc.name, func(t *testing.T) {
			key := mustHex(t, tc.key)
			var pt, want, ct, back [BlockSize]byte
			copy(pt[:], mustHex(t, tc.pt))
			copy(want[:], mustHex(t, tc.ct))

			switch len(key) {
			case KeySize128:
				var k [KeySize128]byte
				copy(k[:], key)
				var c Cipher128
				c.SetEncryptKey(&k)
				c.Encrypt(&ct, &pt)
				var d Cipher128
				d.SetDecryptKey(&k)
				d.Decrypt(&back, &ct)
			case KeySize192:
				var k [KeySize192]byte
				copy(k[:], key)
				var c Cipher192
				c.SetEncryptKey(&k)
				c.Encrypt(&ct, &pt)
				var d Cipher192
				d.SetDecryptKey(&k)
				d.Decrypt(&back, &ct)
			case KeySize256:
				var k [KeySize256]byte
				copy(k[:], key)
				var c Cipher256
				c.SetEncryptKey(&k)
				c.Encrypt(&ct, &pt)
				var d Cipher256
				d.SetDecryptKey(&k)
				d.Decrypt(&back, &ct)
			}

			if ct != want {
				t.Errorf("Encrypt = %x, want %x", ct, want)
			}
			if back != pt {
				t.Errorf("Decrypt = %x, want %x", back, pt)
			}
		})
	}
}

// TestRoundTrip verifies decrypt(encrypt(x)) == x over random keys and
// blocks for every key size.
func TestRoundTrip(t *testing.T) {
	for _, keySize := range []int{KeySize128, KeySize192, KeySize256} {
		t.Run(fmt.Sprintf("key_%d", keySize*8), func(t *testing.T) {
			key := make([]byte, keySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatalf("rand: %v", err)
			}
			c, err := NewCipher(key)
			if err != nil {
				t.Fatalf("NewCipher: %v", err)
			}

			pt := make([]byte, BlockSize)
			ct := make([]byte, BlockSize)
			back := make([]byte, BlockSize)
			for i := 0; i < 256; i++ {
				if _, err := rand.Read(pt); err != nil {
					t.Fatalf("rand: %v", err)
				}
				c.Encrypt(ct, pt)
				if bytes.Equal(ct, pt) {
					t.Fatalf("ciphertext equals plaintext for %x", pt)
				}
				c.Decrypt(back, ct)
				if !bytes.Equal(back, pt) {
					t.Fatalf("round trip failed: got %x, want %x", back, pt)
				}
			}
		})
	}
}

// TestInvalidKeySize checks that every unsupported key length is rejected.
func TestInvalidKeySize(t *testing.T) {
	for _, n := range []int{0, 1, 8, 15, 17, 23, 25, 31, 33, 64} {
		if _, err := NewCipher(make([]byte, n)); err != ErrInvalidKeySize {
			t.Errorf("NewCipher with %d-byte key: got %v, want ErrInvalidKeySize", n, err)
		}
	}
}

// TestKeyScheduleDeterminism verifies that the same key always produces a
// byte-identical schedule and that different keys produce different ones.
func TestKeyScheduleDeterminism(t *testing.T) {
	for _, keySize := range []int{KeySize128, KeySize192, KeySize256} {
		t.Run(fmt.Sprintf("key_%d", keySize*8), func(t *testing.T) {
			key := make([]byte, keySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatalf("rand: %v", err)
			}

			c1, _ := NewCipher(key)
			c2, _ := NewCipher(key)
			if c1.enc != c2.enc || c1.dec != c2.dec {
				t.Error("same key produced different schedules")
			}

			key[0] ^= 0x01
			c3, _ := NewCipher(key)
			if c1.enc == c3.enc {
				t.Error("different keys produced identical encryption schedules")
			}
		})
	}
}

// TestScheduleSymmetry checks the whitening-key invariant: the decryption
// schedule starts with the encryption schedule's last round key and ends
// with its first, for every variant.
func TestScheduleSymmetry(t *testing.T) {
	for _, keySize := range []int{KeySize128, KeySize192, KeySize256} {
		t.Run(fmt.Sprintf("key_%d", keySize*8), func(t *testing.T) {
			key := make([]byte, keySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatalf("rand: %v", err)
			}
			c, err := NewCipher(key)
			if err != nil {
				t.Fatalf("NewCipher: %v", err)
			}

			n := c.n
			for j := 0; j < 4; j++ {
				if c.dec[j] != c.enc[n-4+j] {
					t.Errorf("dec[%d] = %08x, want enc[%d] = %08x", j, c.dec[j], n-4+j, c.enc[n-4+j])
				}
				if c.dec[n-4+j] != c.enc[j] {
					t.Errorf("dec[%d] = %08x, want enc[%d] = %08x", n-4+j, c.dec[n-4+j], j, c.enc[j])
				}
			}
		})
	}
}

// TestNonIdentity checks that distinct blocks map to distinct ciphertexts
// under one key, and that one block maps to distinct ciphertexts under
// distinct keys.
func TestNonIdentity(t *testing.T) {
	key1 := make([]byte, KeySize128)
	key2 := make([]byte, KeySize128)
	if _, err := rand.Read(key1); err != nil {
		t.Fatalf("rand: %v", err)
	}
	if _, err := rand.Read(key2); err != nil {
		t.Fatalf("rand: %v", err)
	}

	c1, _ := NewCipher(key1)
	c2, _ := NewCipher(key2)

	pt1 := []byte("exactly 16 bytes")
	pt2 := []byte("sixteen bytes on")
	ct1 := make([]byte, BlockSize)
	ct2 := make([]byte, BlockSize)

	c1.Encrypt(ct1, pt1)
	c1.Encrypt(ct2, pt2)
	if bytes.Equal(ct1, ct2) {
		t.Error("distinct blocks encrypted to the same ciphertext")
	}

	c2.Encrypt(ct2, pt1)
	if bytes.Equal(ct1, ct2) {
		t.Error("distinct keys encrypted one block to the same ciphertext")
	}
}

func hammingDistance(a, b []byte) int {
	d := 0
	for i := range a {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}

// TestAvalanche is a fuzz-style regression check: flipping a single bit of
// the plaintext or the key should change roughly half of the 128 output
// bits. The bounds are deliberately loose; falling outside them by chance is
// astronomically unlikely for a healthy round function.
func TestAvalanche(t *testing.T) {
	const trials = 50

	for _, keySize := range []int{KeySize128, KeySize192, KeySize256} {
		t.Run(fmt.Sprintf("key_%d", keySize*8), func(t *testing.T) {
			key := make([]byte, keySize)
			pt := make([]byte, BlockSize)
			ct1 := make([]byte, BlockSize)
			ct2 := make([]byte, BlockSize)

			for i := 0; i < trials; i++ {
				if _, err := rand.Read(key); err != nil {
					t.Fatalf("rand: %v", err)
				}
				if _, err := rand.Read(pt); err != nil {
					t.Fatalf("rand: %v", err)
				}
				c, _ := NewCipher(key)
				c.Encrypt(ct1, pt)

				// Flip one plaintext bit.
				pt[i%BlockSize] ^= 1 << (i % 8)
				c.Encrypt(ct2, pt)
				pt[i%BlockSize] ^= 1 << (i % 8)
				if d := hammingDistance(ct1, ct2); d < 30 || d > 98 {
					t.Errorf("plaintext bit flip changed %d/128 output bits", d)
				}

				// Flip one key bit.
				key[i%keySize] ^= 1 << (i % 8)
				ck, _ := NewCipher(key)
				ck.Encrypt(ct2, pt)
				if d := hammingDistance(ct1, ct2); d < 30 || d > 98 {
					t.Errorf("key bit flip changed %d/128 output bits", d)
				}
			}
		})
	}
}

// TestShortBufferPanics verifies the slice API enforces full blocks.
func TestShortBufferPanics(t *testing.T) {
	c, err := NewCipher(make([]byte, KeySize128))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic on short buffer", name)
			}
		}()
		f()
	}

	full := make([]byte, BlockSize)
	short := make([]byte, BlockSize-1)
	expectPanic("Encrypt short src", func() { c.Encrypt(full, short) })
	expectPanic("Encrypt short dst", func() { c.Encrypt(short, full) })
	expectPanic("Decrypt short src", func() { c.Decrypt(full, short) })
	expectPanic("Decrypt short dst", func() { c.Decrypt(short, full) })
}

// TestDeriveKey covers key-material extraction: passthrough of exact-size
// material, determinism, per-size separation, and argument validation.
func TestDeriveKey(t *testing.T) {
	material := []byte("correct horse battery staple")

	for _, size := range []int{KeySize128, KeySize192, KeySize256} {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			k1, err := DeriveKey(material, size)
			if err != nil {
				t.Fatalf("DeriveKey: %v", err)
			}
			if len(k1) != size {
				t.Fatalf("derived key is %d bytes, want %d", len(k1), size)
			}

			k2, err := DeriveKey(material, size)
			if err != nil {
				t.Fatalf("DeriveKey: %v", err)
			}
			if !bytes.Equal(k1, k2) {
				t.Error("derivation is not deterministic")
			}

			exact := make([]byte, size)
			if _, err := rand.Read(exact); err != nil {
				t.Fatalf("rand: %v", err)
			}
			k3, err := DeriveKey(exact, size)
			if err != nil {
				t.Fatalf("DeriveKey: %v", err)
			}
			if !bytes.Equal(k3, exact) {
				t.Error("exact-size material should pass through unchanged")
			}
		})
	}

	k128, _ := DeriveKey(material, KeySize128)
	k256, _ := DeriveKey(material, KeySize256)
	if bytes.Equal(k128, k256[:KeySize128]) {
		t.Error("different sizes should not share a prefix")
	}

	if _, err := DeriveKey(material, 20); err != ErrInvalidKeySize {
		t.Errorf("DeriveKey with size 20: got %v, want ErrInvalidKeySize", err)
	}
	if _, err := DeriveKey(nil, KeySize128); err != ErrNoKeyMaterial {
		t.Errorf("DeriveKey with empty material: got %v, want ErrNoKeyMaterial", err)
	}
}

// TestNewCipherFromMaterial verifies that a passphrase-keyed cipher round
// trips and matches a cipher built from the derived key directly.
func TestNewCipherFromMaterial(t *testing.T) {
	material := []byte("a passphrase rather than a raw key")

	c, err := NewCipherFromMaterial(material, KeySize256)
	if err != nil {
		t.Fatalf("NewCipherFromMaterial: %v", err)
	}

	key, err := DeriveKey(material, KeySize256)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	ref, err := NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	pt := []byte("sixteen byte blk")
	ct1 := make([]byte, BlockSize)
	ct2 := make([]byte, BlockSize)
	back := make([]byte, BlockSize)

	c.Encrypt(ct1, pt)
	ref.Encrypt(ct2, pt)
	if !bytes.Equal(ct1, ct2) {
		t.Error("material-keyed cipher disagrees with directly keyed cipher")
	}
	c.Decrypt(back, ct1)
	if !bytes.Equal(back, pt) {
		t.Errorf("round trip failed: got %x, want %x", back, pt)
	}
}

func benchmarkEncrypt(b *testing.B, keySize int) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		b.Fatalf("rand: %v", err)
	}
	c, err := NewCipher(key)
	if err != nil {
		b.Fatalf("NewCipher: %v", err)
	}
	var pt, ct [BlockSize]byte

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(ct[:], pt[:])
	}
}

func benchmarkDecrypt(b *testing.B, keySize int) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		b.Fatalf("rand: %v", err)
	}
	c, err := NewCipher(key)
	if err != nil {
		b.Fatalf("NewCipher: %v", err)
	}
	var pt, ct [BlockSize]byte
	c.Encrypt(ct[:], pt[:])

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(pt[:], ct[:])
	}
}

func BenchmarkEncryptAES128(b *testing.B) { benchmarkEncrypt(b, KeySize128) }
func BenchmarkEncryptAES192(b *testing.B) { benchmarkEncrypt(b, KeySize192) }
func BenchmarkEncryptAES256(b *testing.B) { benchmarkEncrypt(b, KeySize256) }

func BenchmarkDecryptAES128(b *testing.B) { benchmarkDecrypt(b, KeySize128) }
func BenchmarkDecryptAES256(b *testing.B) { benchmarkDecrypt(b, KeySize256) }

func BenchmarkSetEncryptKey128(b *testing.B) {
	var key [KeySize128]byte
	var c Cipher128
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.SetEncryptKey(&key)
	}
}

func BenchmarkSetDecryptKey256(b *testing.B) {
	var key [KeySize256]byte
	var c Cipher256
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.SetDecryptKey(&key)
	}
}

func BenchmarkEncryptParallel(b *testing.B) {
	key := make([]byte, KeySize128)
	if _, err := rand.Read(key); err != nil {
		b.Fatalf("rand: %v", err)
	}
	c, err := NewCipher(key)
	if err != nil {
		b.Fatalf("NewCipher: %v", err)
	}

	b.SetBytes(BlockSize)
	b.RunParallel(func(pb *testing.PB) {
		var pt, ct [BlockSize]byte
		for pb.Next() {
			c.Encrypt(ct[:], pt[:])
		}
	})
}
