// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package bloom implements a Bloom filter whose k bit positions come from the
// lookup3 double hashing probe sequence of leb.io/lookup3.
package bloom

import (
	"math"

	"github.com/pkg/errors"
	"github.com/willf/bitset"

	"leb.io/lookup3"
)

// Filter is a Bloom filter. It is not safe for concurrent mutation.
type Filter struct {
	m    uint
	k    int
	bits *bitset.BitSet
	sel  *lookup3.Selector
}

// Estimate returns the number of bits m and probes k for n elements at a
// false positive rate of p. It returns 0, 0 unless n > 0 and 0 < p < 1.
func Estimate(n uint, p float64) (m uint, k int) {
	if n == 0 || !(p > 0 && p < 1) {
		return 0, 0
	}
	ln2 := math.Ln2
	m = uint(math.Ceil(-float64(n) * math.Log(p) / (ln2 * ln2)))
	k = int(math.Max(1, math.Round(float64(m)/float64(n)*ln2)))
	return
}

// New returns a filter sized for n elements with false positive rate p.
func New(n uint, p float64) (*Filter, error) {
	if n == 0 {
		return nil, errors.New("bloom: n must be > 0")
	}
	if !(p > 0 && p < 1) {
		return nil, errors.Errorf("bloom: false positive rate %v not in (0, 1)", p)
	}
	m, k := Estimate(n, p)
	return NewWithSeed(m, k, 0)
}

// NewWithSeed returns a filter of m bits that sets k bits per element,
// hashing with seed.
func NewWithSeed(m uint, k int, seed uint32) (*Filter, error) {
	if k <= 0 {
		return nil, errors.Errorf("bloom: k must be > 0, got %d", k)
	}
	if uint64(m) > math.MaxUint32 {
		return nil, errors.Errorf("bloom: %d bits is too many", m)
	}
	sel, err := lookup3.New(lookup3.Config{Buckets: int(m), Seed: seed})
	if err != nil {
		return nil, errors.Wrap(err, "bloom")
	}
	return &Filter{m: m, k: k, bits: bitset.New(m), sel: sel}, nil
}

func (f *Filter) probes(key []byte) []uint32 {
	var scratch [16]uint32
	return f.sel.AppendProbes(scratch[:0], key, f.k)
}

// Add key to the filter.
func (f *Filter) Add(key []byte) *Filter {
	for _, p := range f.probes(key) {
		f.bits.Set(uint(p))
	}
	return f
}

// AddString adds key to the filter.
func (f *Filter) AddString(key string) *Filter {
	return f.Add([]byte(key))
}

// Test reports whether key may be in the filter. False means it definitely is not.
func (f *Filter) Test(key []byte) bool {
	for _, p := range f.probes(key) {
		if !f.bits.Test(uint(p)) {
			return false
		}
	}
	return true
}

// TestString is Test for a string key.
func (f *Filter) TestString(key string) bool {
	return f.Test([]byte(key))
}

// TestAndAdd reports whether key may have been in the filter and then adds it.
func (f *Filter) TestAndAdd(key []byte) bool {
	present := true
	for _, p := range f.probes(key) {
		if !f.bits.Test(uint(p)) {
			present = false
			f.bits.Set(uint(p))
		}
	}
	return present
}

// Len returns the number of bits m.
func (f *Filter) Len() uint { return f.m }

// K returns the number of bits set per element.
func (f *Filter) K() int { return f.k }

// Count returns the number of bits set.
func (f *Filter) Count() uint { return f.bits.Count() }

// FillRatio returns the fraction of bits set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// ClearAll empties the filter.
func (f *Filter) ClearAll() *Filter {
	f.bits.ClearAll()
	return f
}
