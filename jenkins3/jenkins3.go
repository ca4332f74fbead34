// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package jenkins3 implements the 32 bit Jenkins lookup3 hash.
//
// Two entry points share one mixer. Hash32 and HashString follow the
// classic C string calling convention: the key ends at the first zero byte
// and anything after it is ignored. Sum32 hashes every byte of its argument
// and is the one to use for binary data. Both return the same value for any
// key that contains no zero byte.
//
// The state starts as a = b = 0x9e3779b9, c = seed. Note this is not the
// 0xdeadbeef+length setup of hashlittle() in lookup3.c, so values differ
// from that function.
//
// See http://burtleburtle.net/bob/c/lookup3.c
package jenkins3

import (
	"bytes"
	"math/bits"
	"strings"
)

// The size of a jenkins3 32 bit hash in bytes.
const Size = 4

type bytestring interface {
	~string | ~[]byte
}

func rot(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, k)
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= rot(c, 4)
	c += b
	b -= a
	b ^= rot(a, 6)
	a += c
	c -= b
	c ^= rot(b, 8)
	b += a
	a -= c
	a ^= rot(c, 16)
	c += b
	b -= a
	b ^= rot(a, 19)
	a += c
	c -= b
	c ^= rot(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= rot(b, 14)
	a ^= c
	a -= rot(c, 11)
	b ^= a
	b -= rot(a, 25)
	c ^= b
	c -= rot(b, 16)
	a ^= c
	a -= rot(c, 4)
	b ^= a
	b -= rot(a, 14)
	c ^= b
	c -= rot(b, 24)
	return a, b, c
}

// little endian word at k[i:i+4]
func word[K bytestring](k K, i int) uint32 {
	return uint32(k[i]) | uint32(k[i+1])<<8 | uint32(k[i+2])<<16 | uint32(k[i+3])<<24
}

// tail packs the last r (0 <= r < 12) bytes of k, starting at i, into three words.
// Every case adds its byte on top of the cases above it.
func tail[K bytestring](k K, i, r int) (ra, rb, rc uint32) {
	switch r {
	case 11:
		rc += uint32(k[i+10]) << 16
		fallthrough
	case 10:
		rc += uint32(k[i+9]) << 8
		fallthrough
	case 9:
		rc += uint32(k[i+8])
		fallthrough
	case 8:
		rb += uint32(k[i+7]) << 24
		fallthrough
	case 7:
		rb += uint32(k[i+6]) << 16
		fallthrough
	case 6:
		rb += uint32(k[i+5]) << 8
		fallthrough
	case 5:
		rb += uint32(k[i+4])
		fallthrough
	case 4:
		ra += uint32(k[i+3]) << 24
		fallthrough
	case 3:
		ra += uint32(k[i+2]) << 16
		fallthrough
	case 2:
		ra += uint32(k[i+1]) << 8
		fallthrough
	case 1:
		ra += uint32(k[i])
	}
	return
}

// lookup3 hashes the first length bytes of k.
func lookup3[K bytestring](k K, length int, seed uint32) uint32 {
	const golden = 0x9e3779b9

	a, b, c := uint32(golden), uint32(golden), seed

	i := 0
	for ; length-i >= 12; i += 12 {
		a += word(k, i)
		b += word(k, i+4)
		c += word(k, i+8)
		a, b, c = mix(a, b, c)
	}

	// a length that is a multiple of 12 goes straight to final()
	if r := length - i; r > 0 {
		ra, rb, rc := tail(k, i, r)
		a += ra
		b += rb
		c += rc
	}

	_, _, c = final(a, b, c)
	return c
}

// strlen returns the number of bytes before the first zero byte of k, or len(k).
func strlen(k []byte) int {
	if n := bytes.IndexByte(k, 0); n >= 0 {
		return n
	}
	return len(k)
}

// Hash32 returns the lookup3 hash of key given the seed.
// The key is treated as a NUL terminated string: only the bytes before the
// first zero byte are hashed, so Hash32([]byte("ab\x00cd"), s) == Hash32([]byte("ab"), s).
// This is an input constraint of the reference, not something to work around here;
// use Sum32 for keys that may hold zero bytes.
func Hash32(key []byte, seed uint32) uint32 {
	return lookup3(key, strlen(key), seed)
}

// HashString is Hash32 for a string key. It does not allocate.
func HashString(key string, seed uint32) uint32 {
	n := strings.IndexByte(key, 0)
	if n < 0 {
		n = len(key)
	}
	return lookup3(key, n, seed)
}

// Sum32 returns the lookup3 hash of all of data given the seed.
// Zero bytes are hashed like any other byte.
func Sum32(data []byte, seed uint32) uint32 {
	return lookup3(data, len(data), seed)
}
