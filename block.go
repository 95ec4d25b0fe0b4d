package aes

import "encoding/binary"

// encryptBlock encrypts one 16-byte block from src into dst using the
// expanded encryption schedule xk. The schedule length sets the round count.
func encryptBlock(xk []uint32, dst, src []byte) {
	s0 := binary.BigEndian.Uint32(src[0:4]) ^ xk[0]
	s1 := binary.BigEndian.Uint32(src[4:8]) ^ xk[1]
	s2 := binary.BigEndian.Uint32(src[8:12]) ^ xk[2]
	s3 := binary.BigEndian.Uint32(src[12:16]) ^ xk[3]

	// Standard rounds. Each output word takes one byte from each of the four
	// state words along a diagonal; the row shift and column mix are fused
	// into the table lookups.
	nr := len(xk)/4 - 2
	k := 4
	var t0, t1, t2, t3 uint32
	for r := 0; r < nr; r++ {
		t0 = xk[k+0] ^ te0[s0>>24] ^ te1[s1>>16&0xff] ^ te2[s2>>8&0xff] ^ te3[s3&0xff]
		t1 = xk[k+1] ^ te0[s1>>24] ^ te1[s2>>16&0xff] ^ te2[s3>>8&0xff] ^ te3[s0&0xff]
		t2 = xk[k+2] ^ te0[s2>>24] ^ te1[s3>>16&0xff] ^ te2[s0>>8&0xff] ^ te3[s1&0xff]
		t3 = xk[k+3] ^ te0[s3>>24] ^ te1[s0>>16&0xff] ^ te2[s1>>8&0xff] ^ te3[s2&0xff]
		k += 4
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	// Final round substitutes and shifts but skips the column mix.
	s0 = uint32(sbox[t0>>24])<<24 | uint32(sbox[t1>>16&0xff])<<16 | uint32(sbox[t2>>8&0xff])<<8 | uint32(sbox[t3&0xff])
	s1 = uint32(sbox[t1>>24])<<24 | uint32(sbox[t2>>16&0xff])<<16 | uint32(sbox[t3>>8&0xff])<<8 | uint32(sbox[t0&0xff])
	s2 = uint32(sbox[t2>>24])<<24 | uint32(sbox[t3>>16&0xff])<<16 | uint32(sbox[t0>>8&0xff])<<8 | uint32(sbox[t1&0xff])
	s3 = uint32(sbox[t3>>24])<<24 | uint32(sbox[t0>>16&0xff])<<16 | uint32(sbox[t1>>8&0xff])<<8 | uint32(sbox[t2&0xff])

	binary.BigEndian.PutUint32(dst[0:4], s0^xk[k+0])
	binary.BigEndian.PutUint32(dst[4:8], s1^xk[k+1])
	binary.BigEndian.PutUint32(dst[8:12], s2^xk[k+2])
	binary.BigEndian.PutUint32(dst[12:16], s3^xk[k+3])
}

// decryptBlock decrypts one 16-byte block from src into dst using the
// expanded decryption schedule xk. Structurally the mirror of encryptBlock:
// the inverse tables shift the rows the other way, and the schedule has
// already been reversed and inverse-mixed by expandKey.
func decryptBlock(xk []uint32, dst, src []byte) {
	s0 := binary.BigEndian.Uint32(src[0:4]) ^ xk[0]
	s1 := binary.BigEndian.Uint32(src[4:8]) ^ xk[1]
	s2 := binary.BigEndian.Uint32(src[8:12]) ^ xk[2]
	s3 := binary.BigEndian.Uint32(src[12:16]) ^ xk[3]

	nr := len(xk)/4 - 2
	k := 4
	var t0, t1, t2, t3 uint32
	for r := 0; r < nr; r++ {
		t0 = xk[k+0] ^ td0[s0>>24] ^ td1[s3>>16&0xff] ^ td2[s2>>8&0xff] ^ td3[s1&0xff]
		t1 = xk[k+1] ^ td0[s1>>24] ^ td1[s0>>16&0xff] ^ td2[s3>>8&0xff] ^ td3[s2&0xff]
		t2 = xk[k+2] ^ td0[s2>>24] ^ td1[s1>>16&0xff] ^ td2[s0>>8&0xff] ^ td3[s3&0xff]
		t3 = xk[k+3] ^ td0[s3>>24] ^ td1[s2>>16&0xff] ^ td2[s1>>8&0xff] ^ td3[s0&0xff]
		k += 4
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	s0 = uint32(invSbox[t0>>24])<<24 | uint32(invSbox[t3>>16&0xff])<<16 | uint32(invSbox[t2>>8&0xff])<<8 | uint32(invSbox[t1&0xff])
	s1 = uint32(invSbox[t1>>24])<<24 | uint32(invSbox[t0>>16&0xff])<<16 | uint32(invSbox[t3>>8&0xff])<<8 | uint32(invSbox[t2&0xff])
	s2 = uint32(invSbox[t2>>24])<<24 | uint32(invSbox[t1>>16&0xff])<<16 | uint32(invSbox[t0>>8&0xff])<<8 | uint32(invSbox[t3&0xff])
	s3 = uint32(invSbox[t3>>24])<<24 | uint32(invSbox[t2>>16&0xff])<<16 | uint32(invSbox[t1>>8&0xff])<<8 | uint32(invSbox[t0&0xff])

	binary.BigEndian.PutUint32(dst[0:4], s0^xk[k+0])
	binary.BigEndian.PutUint32(dst[4:8], s1^xk[k+1])
	binary.BigEndian.PutUint32(dst[8:12], s2^xk[k+2])
	binary.BigEndian.PutUint32(dst[12:16], s3^xk[k+3])
}
