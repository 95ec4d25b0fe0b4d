package aes

import "github.com/minio/blake2b-simd"

// DeriveKey reduces arbitrary-length key material to an AES key of the
// requested size (16, 24, or 32 bytes). Material that is already exactly the
// requested size is used as-is; anything else is hashed down with a sized
// BLAKE2b instance. The derivation is deterministic, so the same material
// always yields the same key.
func DeriveKey(material []byte, size int) ([]byte, error) {
	switch size {
	case KeySize128, KeySize192, KeySize256:
	default:
		return nil, ErrInvalidKeySize
	}
	if len(material) == 0 {
		return nil, ErrNoKeyMaterial
	}

	key := make([]byte, size)
	if len(material) == size {
		copy(key, material)
		return key, nil
	}

	h, err := blake2b.New(&blake2b.Config{Size: uint8(size)})
	if err != nil {
		return nil, err
	}
	h.Write(material)
	copy(key, h.Sum(nil))
	return key, nil
}

// NewCipherFromMaterial creates a cipher for the variant implied by size,
// deriving the key from material via DeriveKey. Use this when the secret is
// a passphrase or other non-uniform input rather than a raw key.
func NewCipherFromMaterial(material []byte, size int) (*Cipher, error) {
	key, err := DeriveKey(material, size)
	if err != nil {
		return nil, err
	}
	return NewCipher(key)
}
