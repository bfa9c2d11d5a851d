package hashfunc

import (
	"bytes"
	"encoding/binary"
	"golang.org/x/exp/constraints"
	"hash/maphash"
)

// Strings - KeyHasher for string keys. The representation is the bytes of the string, so BytesProbe can be used
// to look up string keys from a []byte without converting it.
type Strings struct{}

// WriteKey - Writes the bytes of key
func (Strings) WriteKey(d Digest, key string) {
	_, _ = d.WriteString(key)
}

// Equal - Returns true if a and b are equal strings
func (Strings) Equal(a, b string) bool {
	return a == b
}

// Bytes - KeyHasher for []byte keys, keys are compared by contents.
// Stored keys must not be modified by the caller after insertion.
type Bytes struct{}

// WriteKey - Writes key as is
func (Bytes) WriteKey(d Digest, key []byte) {
	_, _ = d.Write(key)
}

// Equal - Returns true if a and b are equal both in size and contents
func (Bytes) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Integers - KeyHasher for integer keys. The representation is the value converted to uint64 in little endian order.
type Integers[T constraints.Integer] struct{}

// WriteKey - Writes the 8 byte little endian representation of key
func (Integers[T]) WriteKey(d Digest, key T) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(key))
	_, _ = d.Write(b[:])
}

// Equal - Returns true if a == b
func (Integers[T]) Equal(a, b T) bool {
	return a == b
}

// Comparable - KeyHasher for any comparable key. The representation is the maphash.Comparable value of the key
// under a seed owned by the hasher, written as 8 bytes. Equality is consistent with ==.
type Comparable[K comparable] struct {
	seed maphash.Seed
}

// NewComparable - Returns a new Comparable key hasher with a fresh random seed
func NewComparable[K comparable]() Comparable[K] {
	return Comparable[K]{seed: maphash.MakeSeed()}
}

// WriteKey - Writes the seeded maphash of key
func (C Comparable[K]) WriteKey(d Digest, key K) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], maphash.Comparable(C.seed, key))
	_, _ = d.Write(b[:])
}

// Equal - Returns true if a == b
func (C Comparable[K]) Equal(a, b K) bool {
	return a == b
}

// Default - Returns the KeyHasher used for comparable keys when none is given.
// Strings and the predeclared integer types get their byte representation hashers, anything else gets Comparable.
func Default[K comparable]() KeyHasher[K] {
	var zero K
	var kh any
	switch any(zero).(type) {
	case string:
		kh = Strings{}
	case int:
		kh = Integers[int]{}
	case int8:
		kh = Integers[int8]{}
	case int16:
		kh = Integers[int16]{}
	case int32:
		kh = Integers[int32]{}
	case int64:
		kh = Integers[int64]{}
	case uint:
		kh = Integers[uint]{}
	case uint8:
		kh = Integers[uint8]{}
	case uint16:
		kh = Integers[uint16]{}
	case uint32:
		kh = Integers[uint32]{}
	case uint64:
		kh = Integers[uint64]{}
	case uintptr:
		kh = Integers[uintptr]{}
	default:
		return NewComparable[K]()
	}

	return kh.(KeyHasher[K])
}

// BytesProbe - Probe for string keys hashed with Strings
type BytesProbe []byte

// WriteKey - Writes the probe bytes, same as Strings writes for the equivalent string
func (B BytesProbe) WriteKey(d Digest) {
	_, _ = d.Write(B)
}

// Matches - Returns true if key holds the same bytes as the probe
func (B BytesProbe) Matches(key string) bool {
	return string(B) == key
}

// StringProbe - Probe for []byte keys hashed with Bytes
type StringProbe string

// WriteKey - Writes the probe string, same as Bytes writes for the equivalent byte slice
func (S StringProbe) WriteKey(d Digest) {
	_, _ = d.WriteString(string(S))
}

// Matches - Returns true if key holds the same bytes as the probe
func (S StringProbe) Matches(key []byte) bool {
	return string(key) == string(S)
}

// KeyProbe - Probe wrapping an owned key together with its KeyHasher. It trivially agrees with the hasher.
type KeyProbe[K any] struct {
	Key    K
	Hasher KeyHasher[K]
}

// WriteKey - Writes the key through the wrapped hasher
func (P KeyProbe[K]) WriteKey(d Digest) {
	P.Hasher.WriteKey(d, P.Key)
}

// Matches - Returns true if key equals the wrapped key
func (P KeyProbe[K]) Matches(key K) bool {
	return P.Hasher.Equal(P.Key, key)
}
