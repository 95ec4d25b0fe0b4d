package aes

import "crypto/cipher"

const (
	// BlockSize is the AES block size in bytes, for every key size.
	BlockSize = 16

	// KeySize128, KeySize192, and KeySize256 are the supported key sizes in bytes.
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

// Schedule lengths in 32-bit words: 4*(rounds+1) with 10, 12, or 14 rounds.
const (
	numWords128 = 44
	numWords192 = 52
	numWords256 = 60
)

// Cipher is a single-key AES context selecting the variant from the key
// length. It holds one encryption and one decryption schedule, both written
// at construction and never mutated afterward, so a Cipher is safe for
// concurrent use from multiple goroutines.
type Cipher struct {
	enc [numWords256]uint32
	dec [numWords256]uint32
	n   int // schedule words in use: 44, 52, or 60
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher creates a new AES cipher instance with the given key.
// The key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256
// respectively.
func NewCipher(key []byte) (*Cipher, error) {
	var n int
	switch len(key) {
	case KeySize128:
		n = numWords128
	case KeySize192:
		n = numWords192
	case KeySize256:
		n = numWords256
	default:
		return nil, ErrInvalidKeySize
	}

	c := &Cipher{n: n}
	expandKey(key, c.enc[:n], c.dec[:n])
	return c, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 16-byte block in src and writes the result to dst.
// dst and src must not overlap except exactly.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	encryptBlock(c.enc[:c.n], dst, src)
}

// Decrypt decrypts the 16-byte block in src and writes the result to dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	decryptBlock(c.dec[:c.n], dst, src)
}

// Cipher128 is a fixed-size AES-128 context. Unlike Cipher it exposes the
// key setup steps separately and takes fixed-size arrays, so key length and
// block length mistakes are compile errors rather than runtime checks, and
// no call allocates. The zero value is ready for SetEncryptKey or
// SetDecryptKey.
type Cipher128 struct {
	ek [numWords128]uint32
	dk [numWords128]uint32
}

// SetEncryptKey builds the encryption schedule. A context keyed with only
// SetEncryptKey can encrypt but not decrypt.
func (c *Cipher128) SetEncryptKey(key *[KeySize128]byte) {
	expandKey(key[:], c.ek[:], nil)
}

// SetDecryptKey builds both the encryption and decryption schedules.
func (c *Cipher128) SetDecryptKey(key *[KeySize128]byte) {
	expandKey(key[:], c.ek[:], c.dk[:])
}

// Encrypt encrypts one block from src into dst.
func (c *Cipher128) Encrypt(dst, src *[BlockSize]byte) {
	encryptBlock(c.ek[:], dst[:], src[:])
}

// Decrypt decrypts one block from src into dst. The key must have been set
// with SetDecryptKey.
func (c *Cipher128) Decrypt(dst, src *[BlockSize]byte) {
	decryptBlock(c.dk[:], dst[:], src[:])
}

// Cipher192 is a fixed-size AES-192 context. See Cipher128.
type Cipher192 struct {
	ek [numWords192]uint32
	dk [numWords192]uint32
}

// SetEncryptKey builds the encryption schedule.
func (c *Cipher192) SetEncryptKey(key *[KeySize192]byte) {
	expandKey(key[:], c.ek[:], nil)
}

// SetDecryptKey builds both the encryption and decryption schedules.
func (c *Cipher192) SetDecryptKey(key *[KeySize192]byte) {
	expandKey(key[:], c.ek[:], c.dk[:])
}

// Encrypt encrypts one block from src into dst.
func (c *Cipher192) Encrypt(dst, src *[BlockSize]byte) {
	encryptBlock(c.ek[:], dst[:], src[:])
}

// Decrypt decrypts one block from src into dst.
func (c *Cipher192) Decrypt(dst, src *[BlockSize]byte) {
	decryptBlock(c.dk[:], dst[:], src[:])
}

// Cipher256 is a fixed-size AES-256 context. See Cipher128.
type Cipher256 struct {
	ek [numWords256]uint32
	dk [numWords256]uint32
}

// SetEncryptKey builds the encryption schedule.
func (c *Cipher256) SetEncryptKey(key *[KeySize256]byte) {
	expandKey(key[:], c.ek[:], nil)
}

// SetDecryptKey builds both the encryption and decryption schedules.
func (c *Cipher256) SetDecryptKey(key *[KeySize256]byte) {
	expandKey(key[:], c.ek[:], c.dk[:])
}

// Encrypt encrypts one block from src into dst.
func (c *Cipher256) Encrypt(dst, src *[BlockSize]byte) {
	encryptBlock(c.ek[:], dst[:], src[:])
}

// Decrypt decrypts one block from src into dst.
func (c *Cipher256) Decrypt(dst, src *[BlockSize]byte) {
	decryptBlock(c.dk[:], dst[:], src[:])
}
