package aes

import (
	"encoding/binary"
	"math/bits"
)

// rcon[i-1] is the round constant [x^(i-1), {00}, {00}, {00}] in GF(2^8),
// successive doublings reduced by the field modulus 0x11b. Ten constants
// cover the longest schedule. See FIPS 197 section 5.2.
var rcon = [10]uint32{
	0x01000000, 0x02000000, 0x04000000, 0x08000000, 0x10000000,
	0x20000000, 0x40000000, 0x80000000, 0x1b000000, 0x36000000,
}

// subWord applies the S-box to each byte of w.
func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// rotWord cyclically moves the top byte of w to the bottom.
func rotWord(w uint32) uint32 { return bits.RotateLeft32(w, 8) }

// expandKey fills enc with the encryption schedule for key and, when dec is
// non-nil, derives the decryption schedule from it. The schedule length
// selects the variant: 44, 52, or 60 words for 16, 24, or 32 byte keys.
func expandKey(key []byte, enc, dec []uint32) {
	nk := len(key) / 4
	for i := 0; i < nk; i++ {
		enc[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < len(enc); i++ {
		t := enc[i-1]
		if i%nk == 0 {
			t = subWord(rotWord(t)) ^ rcon[i/nk-1]
		} else if nk > 6 && i%nk == 4 {
			// With an eight-word key a round-key group boundary falls in the
			// middle of the key length, so every second group substitutes
			// once more, without the rotation.
			t = subWord(t)
		}
		enc[i] = enc[i-nk] ^ t
	}

	if dec == nil {
		return
	}

	// Reverse the schedule in four-word round keys. During decryption the
	// round key is added after the inverse mixing step rather than before it,
	// so every round key except the outermost two is pushed through the
	// inverse mix itself: the forward S-box lookup cancels the inverse S-box
	// baked into the td tables, leaving only the InvMixColumns contribution.
	n := len(enc)
	for i := 0; i < n; i += 4 {
		ei := n - i - 4
		for j := 0; j < 4; j++ {
			x := enc[ei+j]
			if i > 0 && i+4 < n {
				x = td0[sbox[x>>24]] ^
					td1[sbox[x>>16&0xff]] ^
					td2[sbox[x>>8&0xff]] ^
					td3[sbox[x&0xff]]
			}
			dec[i+j] = x
		}
	}
}
