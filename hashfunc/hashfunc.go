package hashfunc

// Digest - A reusable streaming hash state. Key hashers write the byte representation of a key to it and the table
// reads the resulting 64-bit hash. Reset must restore the seeded initial state, not an unseeded one.
type Digest interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	Sum64() uint64
	Reset()
}

// HashAlgorithm - Interface that permits a Table to be used with a custom hash algorithm suited for its particular
// distribution of keys. Bucket selection is always hash modulo the current number of buckets, the algorithm only
// decides how key bytes are turned into the hash value.
type HashAlgorithm interface {
	// NewDigest - Returns a new digest primed with the algorithm's seed.
	// The table keeps the returned digest for its whole life and calls Reset before hashing each key, so two
	// digests from the same algorithm instance must produce the same hash for the same bytes.
	NewDigest() Digest

	// Name - Returns a short name of the algorithm, used in statistics and logging.
	Name() string
}

// KeyHasher - Defines the byte representation and the equivalence relation over keys of type K.
// WriteKey must write equal bytes for keys that Equal reports as equal.
type KeyHasher[K any] interface {
	// WriteKey - Writes the representation of key to the digest
	WriteKey(d Digest, key K)

	// Equal - Returns true if a and b are the same key
	Equal(a, b K) bool
}

// Probe - A borrowed form of a key of type K used for lookups without constructing an owned key.
//
// A probe must agree exactly with the KeyHasher of the table it is used on: WriteKey must write the same bytes
// as the KeyHasher would for the owned key the probe stands for, and Matches must return true for exactly that key.
// A probe that breaks this agreement will simply not find its key.
type Probe[K any] interface {
	// WriteKey - Writes the representation of the probe to the digest
	WriteKey(d Digest)

	// Matches - Returns true if key is the owned form of the probe
	Matches(key K) bool
}

// Sum - Returns the hash of key using digest d and key hasher kh. The digest is reset first.
func Sum[K any](d Digest, kh KeyHasher[K], key K) uint64 {
	d.Reset()
	kh.WriteKey(d, key)
	return d.Sum64()
}

// SumProbe - Returns the hash of probe p using digest d. The digest is reset first.
func SumProbe[K any](d Digest, p Probe[K]) uint64 {
	d.Reset()
	p.WriteKey(d)
	return d.Sum64()
}
