package aes_test

import (
	"encoding/hex"
	"fmt"

	aes "github.com/collinfunk/go-aes"
)

// ExampleNewCipher encrypts and decrypts a single block with AES-128.
func ExampleNewCipher() {
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plaintext, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	cipher, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	ciphertext := make([]byte, aes.BlockSize)
	cipher.Encrypt(ciphertext, plaintext)

	decrypted := make([]byte, aes.BlockSize)
	cipher.Decrypt(decrypted, ciphertext)

	fmt.Printf("Ciphertext: %x\n", ciphertext)
	fmt.Printf("Round trip ok: %t\n", hex.EncodeToString(decrypted) == hex.EncodeToString(plaintext))

	// Output:
	// Ciphertext: 69c4e0d86a7b0430d8cdb78070b4c55a
	// Round trip ok: true
}

// ExampleCipher256 uses the fixed-size AES-256 context, which allocates
// nothing and moves length checking into the type system.
func ExampleCipher256() {
	var key [aes.KeySize256]byte
	var plaintext, ciphertext [aes.BlockSize]byte

	var c aes.Cipher256
	c.SetEncryptKey(&key)
	c.Encrypt(&ciphertext, &plaintext)

	fmt.Printf("Ciphertext: %x\n", ciphertext)

	// Output:
	// Ciphertext: dc95c078a2408989ad48a21492842087
}

// ExampleNewCipherFromMaterial keys a cipher from a passphrase instead of a
// raw fixed-length key.
func ExampleNewCipherFromMaterial() {
	cipher, err := aes.NewCipherFromMaterial([]byte("my secret passphrase"), aes.KeySize256)
	if err != nil {
		panic(err)
	}

	plaintext := []byte("exactly 16 bytes")
	ciphertext := make([]byte, aes.BlockSize)
	cipher.Encrypt(ciphertext, plaintext)

	decrypted := make([]byte, aes.BlockSize)
	cipher.Decrypt(decrypted, ciphertext)

	fmt.Printf("Decrypted: %s\n", decrypted)

	// Output:
	// Decrypted: exactly 16 bytes
}
