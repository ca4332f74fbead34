// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package lookup3 maps keys to buckets with the Jenkins lookup3 hash.
// The hash itself lives in leb.io/lookup3/jenkins3; this package adds what a
// hash table needs on top of it: a bucket count (optionally rounded up to a
// prime), serialization of arbitrary keys, double hashing for probe
// sequences, and counters.
package lookup3

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"leb.io/lookup3/internal/primes"
)

// seed perturbation for the second hash of a probe sequence
const probeSeed = 0x85ebca6b

// bucket numbers are uint32
const maxBuckets = 1 << 32

// Configuration for a Selector. All fields are exported/public.
type Config struct {
	Buckets  int    // number of buckets, must be > 0
	Seed     uint32 // seed for the hash function
	HashName string // "j332", "j332b" (default) or "m332", see hashes.go
	Prime    bool   // round Buckets up to a prime
}

// Counters. Read them with Selector.Counters.
type Counters struct {
	Hashes      uint64 // number of hashes computed
	Encodes     uint64 // number of keys that had to be serialized
	EncodeFails uint64 // number of keys that could not be serialized
}

// Selector maps keys to bucket numbers in [0, Buckets).
// It is safe for concurrent use.
type Selector struct {
	Config // config data
	hf     HashFunc

	hashes      atomic.Uint64
	encodes     atomic.Uint64
	encodeFails atomic.Uint64
}

// New returns a Selector for cfg.
func New(cfg Config) (*Selector, error) {
	if cfg.Buckets <= 0 {
		return nil, errors.Errorf("lookup3: buckets must be > 0, got %d", cfg.Buckets)
	}
	if uint64(cfg.Buckets) > maxBuckets {
		return nil, errors.Errorf("lookup3: too many buckets %d", cfg.Buckets)
	}
	if cfg.Prime {
		cfg.Buckets = primes.NextPrime(cfg.Buckets)
		if uint64(cfg.Buckets) > maxBuckets {
			return nil, errors.Errorf("lookup3: too many buckets %d after rounding to a prime", cfg.Buckets)
		}
	}
	hf, err := getHash(cfg.HashName)
	if err != nil {
		return nil, err
	}
	if cfg.HashName == "" {
		cfg.HashName = J332B
	}
	return &Selector{Config: cfg, hf: hf}, nil
}

func (s *Selector) hash(key []byte, seed uint32) uint32 {
	s.hashes.Inc()
	return s.hf(key, seed)
}

// IndexBytes returns the bucket for key.
func (s *Selector) IndexBytes(key []byte) uint32 {
	return uint32(uint64(s.hash(key, s.Seed)) % uint64(s.Buckets))
}

// IndexString returns the bucket for key.
func (s *Selector) IndexString(key string) uint32 {
	return s.IndexBytes([]byte(key))
}

// Index returns the bucket for key, which may be of any type the binary
// encoder accepts. []byte, string, uint32 and uint64 keys are hashed without
// going through the encoder.
func (s *Selector) Index(key interface{}) (uint32, error) {
	var idx uint32
	err := s.withKey(key, func(b []byte) {
		idx = s.IndexBytes(b)
	})
	return idx, err
}

// step returns the distance between probes for a key whose second hash is h2.
// It is never 0 when there is more than one bucket, and with a prime number
// of buckets the first Buckets probes are all different.
func (s *Selector) step(h2 uint32) uint64 {
	n := uint64(s.Buckets)
	if n == 1 {
		return 0
	}
	return 1 + uint64(h2)%(n-1)
}

// Probe returns the i'th bucket of the double hashing sequence for key.
// Probe(key, 0) == IndexBytes(key); an i < 0 is treated as 0.
func (s *Selector) Probe(key []byte, i int) uint32 {
	h1 := uint64(s.hash(key, s.Seed))
	if i <= 0 {
		return uint32(h1 % uint64(s.Buckets))
	}
	st := s.step(s.hash(key, s.Seed^probeSeed))
	return uint32((h1 + uint64(i)*st) % uint64(s.Buckets))
}

// AppendProbes appends the first k buckets of the probe sequence for key to dst.
func (s *Selector) AppendProbes(dst []uint32, key []byte, k int) []uint32 {
	if k <= 0 {
		return dst
	}
	n := uint64(s.Buckets)
	h1 := uint64(s.hash(key, s.Seed)) % n
	dst = append(dst, uint32(h1))
	if k == 1 {
		return dst
	}
	st := s.step(s.hash(key, s.Seed^probeSeed))
	for i := 1; i < k; i++ {
		h1 = (h1 + st) % n
		dst = append(dst, uint32(h1))
	}
	return dst
}

// Probes returns the first k buckets of the probe sequence for key.
func (s *Selector) Probes(key []byte, k int) []uint32 {
	if k <= 0 {
		return nil
	}
	return s.AppendProbes(make([]uint32, 0, k), key, k)
}

// Counters returns a snapshot of the counters.
func (s *Selector) Counters() Counters {
	return Counters{
		Hashes:      s.hashes.Load(),
		Encodes:     s.encodes.Load(),
		EncodeFails: s.encodeFails.Load(),
	}
}
