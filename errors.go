package aes

import "errors"

var (
	// ErrInvalidKeySize is returned when the provided key is not 16, 24, or 32 bytes.
	ErrInvalidKeySize = errors.New("aes: invalid key size, must be 16, 24, or 32 bytes")

	// ErrNoKeyMaterial is returned when key derivation is given empty input.
	ErrNoKeyMaterial = errors.New("aes: key material is empty")
)
