// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package lookup3

import (
	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"

	"leb.io/lookup3/jenkins3"
)

// HashFunc is a seeded 32 bit hash of a byte slice.
type HashFunc func(key []byte, seed uint32) uint32

// Hash function names.
const (
	J332  = "j332"  // lookup3, key ends at the first zero byte
	J332B = "j332b" // lookup3 over every byte of the key
	M332  = "m332"  // MurmurHash3 x86_32
)

// j332 truncates at a zero byte, so keys that went through the encoder
// (which writes zero bytes freely) should use j332b.
func getHash(hashName string) (HashFunc, error) {
	switch hashName {
	case "", J332B:
		return jenkins3.Sum32, nil
	case J332:
		return jenkins3.Hash32, nil
	case M332:
		return murmur3.Sum32WithSeed, nil
	default:
		return nil, errors.Errorf("lookup3: unknown hash function %q", hashName)
	}
}

// GetHash returns the hash function called hashName.
func GetHash(hashName string) (HashFunc, error) {
	return getHash(hashName)
}
