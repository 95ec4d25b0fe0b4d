// Package aes implements the AES block cipher (FIPS 197) in pure Go, with
// all three key sizes: AES-128, AES-192, and AES-256.
//
// The implementation is the classic table-driven form: the S-box and the
// MixColumns matrix are fused into eight precomputed 256-entry word tables,
// so each round is four lookups and XORs per output word. Decryption runs
// the same structure over the inverse tables, with the round keys reversed
// and inverse-mixed at key setup time.
//
// # Interfaces
//
// Two surfaces are provided:
//
//   - NewCipher returns a *Cipher selecting the variant from the key length
//     (16, 24, or 32 bytes). *Cipher implements crypto/cipher.Block, so it
//     plugs directly into the standard library's block cipher modes.
//   - Cipher128, Cipher192, and Cipher256 are fixed-size contexts with
//     separate SetEncryptKey/SetDecryptKey steps. They take array pointers
//     instead of slices, perform no validation and no allocation, and suit
//     callers building their own modes on top of the raw primitive.
//
// NewCipherFromMaterial additionally accepts arbitrary-length key material,
// deriving the cipher key with a sized BLAKE2b hash.
//
// # Basic Usage
//
//	key := make([]byte, 32) // AES-256
//	// Fill key with cryptographically secure random bytes.
//
//	cipher, err := aes.NewCipher(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var ciphertext [16]byte
//	cipher.Encrypt(ciphertext[:], plaintext[:16])
//
// # Security
//
// This package encrypts and decrypts single 16-byte blocks. A block cipher
// alone is not a secure channel: callers need a mode of operation (and
// usually authentication) on top, such as the CTR and GCM constructions in
// crypto/cipher. Table lookups are indexed by secret data, so this
// implementation is not constant-time on machines with observable cache
// behavior; it favors portability and clarity over side-channel hardening.
//
// # Thread Safety
//
// Cipher instances are safe for concurrent use once keyed. The schedules are
// written during construction and never mutated afterward, so any number of
// goroutines may call Encrypt and Decrypt on the same instance. The typed
// contexts are likewise safe after SetEncryptKey/SetDecryptKey returns, but
// re-keying a context in use requires external coordination.
package aes
