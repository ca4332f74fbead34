// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package jenkins3

import "hash"

// Digest adapts Sum32 to hash.Hash32.
// lookup3 needs the length of the key before it can handle the last block,
// so Write only buffers and the hash is computed in Sum and Sum32.
type Digest struct {
	seed uint32
	buf  []byte
}

var (
	_ hash.Hash   = new(Digest)
	_ hash.Hash32 = new(Digest)
)

// New returns a new hash.Hash32 that computes the 32 bit lookup3 hash of
// everything written to it. Zero bytes are hashed, as with Sum32.
func New(seed uint32) hash.Hash32 {
	d := new(Digest)
	d.seed = seed
	d.Reset()
	return d
}

// Reset the hash state.
func (d *Digest) Reset() {
	d.buf = d.buf[:0]
}

// Return the size of the resulting hash.
func (d *Digest) Size() int { return Size }

// Return the blocksize of the hash which in this case is 1 byte.
func (d *Digest) BlockSize() int { return 1 }

// Write appends p to the data to be hashed. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the current hash to b in big endian order.
func (d *Digest) Sum(b []byte) []byte {
	h := d.Sum32()
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}

// Sum32 returns the current hash. It does not change the state.
func (d *Digest) Sum32() uint32 {
	return Sum32(d.buf, d.seed)
}
