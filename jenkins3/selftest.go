// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package jenkins3

import "fmt"

// Vector is a known answer for Hash32.
type Vector struct {
	Key  string
	Seed uint32
	Hash uint32
}

// Vectors are the published answers every lookup3 implementation with this
// initial state must reproduce.
var Vectors = []Vector{
	{"Hello, Jenkins!", 0, 2484708164},
	{"Hello Jenkinss", 0, 850494015},
	{"Hello, Jenkins", 0, 3393305742},
	{"hello, jenkins!", 0, 3521406038},
}

// MismatchError reports a vector that did not reproduce.
type MismatchError struct {
	Vector
	Got uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("jenkins3: Hash32(%q, %d) = %d, want %d", e.Key, e.Seed, e.Got, e.Hash)
}

// Check hashes each vector with Hash32 and returns a *MismatchError for the
// first one that does not match.
func Check(vs []Vector) error {
	for _, v := range vs {
		if h := HashString(v.Key, v.Seed); h != v.Hash {
			return &MismatchError{Vector: v, Got: h}
		}
		if h := Hash32([]byte(v.Key), v.Seed); h != v.Hash {
			return &MismatchError{Vector: v, Got: h}
		}
	}
	return nil
}

// SelfTest checks Vectors.
func SelfTest() error {
	return Check(Vectors)
}
