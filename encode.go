// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package lookup3

import (
	"sync"

	"github.com/alecthomas/binary"
	"github.com/pkg/errors"
)

// Simple struct and a couple of methods that satisfy the io.Writer interface.
// buf saves the data in a slice that can be hashed without a copy.
type buf struct {
	b    []byte
	base [64]byte
}

func (b *buf) Reset() {
	b.b = b.base[:0]
}

// capture io.Writer data in a slice
func (b *buf) Write(p []byte) (n int, err error) {
	b.b = append(b.b, p...)
	return len(p), nil
}

type keyEncoder struct {
	buf buf
	enc *binary.Encoder
}

var encoders = sync.Pool{
	New: func() interface{} {
		e := new(keyEncoder)
		e.buf.Reset()
		e.enc = binary.NewEncoder(&e.buf)
		return e
	},
}

// the following 2 functions can be inlined.
func ui32tob(b []byte, key uint32) {
	b[0], b[1], b[2], b[3] = byte(key), byte(key>>8), byte(key>>16), byte(key>>24)
}

func ui64tob(b []byte, key uint64) {
	b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7] = byte(key), byte(key>>8), byte(key>>16), byte(key>>24), byte(key>>32), byte(key>>40), byte(key>>48), byte(key>>56)
}

// withKey serializes key and calls f with the bytes. The slice is only valid during f.
// Numeric keys are written little endian; everything else goes through the binary encoder.
func (s *Selector) withKey(key interface{}, f func(b []byte)) (err error) {
	switch k := key.(type) {
	case []byte:
		f(k)
		return nil
	case string:
		f([]byte(k))
		return nil
	case uint32:
		var b [4]byte
		ui32tob(b[:], k)
		f(b[:])
		return nil
	case uint64:
		var b [8]byte
		ui64tob(b[:], k)
		f(b[:])
		return nil
	case nil:
		s.encodeFails.Inc()
		return errors.New("lookup3: nil key")
	}

	e := encoders.Get().(*keyEncoder)
	defer encoders.Put(e)
	e.buf.Reset()
	s.encodes.Inc()

	// the encoder panics on some values it cannot represent
	defer func() {
		if r := recover(); r != nil {
			s.encodeFails.Inc()
			err = errors.Errorf("lookup3: can't encode key of type %T: %v", key, r)
		}
	}()
	if err := e.enc.Encode(key); err != nil {
		s.encodeFails.Inc()
		return errors.Wrapf(err, "lookup3: can't encode key of type %T", key)
	}
	f(e.buf.b)
	return nil
}
