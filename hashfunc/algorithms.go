package hashfunc

import (
	"fmt"
	"github.com/cespare/xxhash/v2"
	"hash/crc32"
	"hash/maphash"
	"unsafe"
)

// Names of the built-in hash algorithms
const (
	MapHash = "maphash"
	XXHash  = "xxhash"
	CRC32   = "crc32"
)

// MapHashAlgorithm - The internally used default algorithm. It is implemented using hash/maphash with a random
// seed created at instantiation, so hash values differ between tables and between processes.
type MapHashAlgorithm struct {
	seed maphash.Seed
}

// NewMapHashAlgorithm - Returns a pointer to a new MapHashAlgorithm instance with a fresh random seed
func NewMapHashAlgorithm() *MapHashAlgorithm {
	return &MapHashAlgorithm{seed: maphash.MakeSeed()}
}

// NewDigest - Returns a maphash.Hash using the instance seed. maphash.Hash keeps its seed on Reset.
func (M *MapHashAlgorithm) NewDigest() Digest {
	h := &maphash.Hash{}
	h.SetSeed(M.seed)
	return h
}

// Name - Returns the algorithm name
func (M *MapHashAlgorithm) Name() string {
	return MapHash
}

// XXHashAlgorithm - Algorithm implemented using xxhash (XXH64) with a caller supplied seed.
// Given the same seed it produces the same hash values across processes.
type XXHashAlgorithm struct {
	seed uint64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
//   - seed is the XXH64 seed
func NewXXHashAlgorithm(seed uint64) *XXHashAlgorithm {
	return &XXHashAlgorithm{seed: seed}
}

// NewDigest - Returns a seeded xxhash digest
func (X *XXHashAlgorithm) NewDigest() Digest {
	return &xxDigest{Digest: xxhash.NewWithSeed(X.seed), seed: X.seed}
}

// Name - Returns the algorithm name
func (X *XXHashAlgorithm) Name() string {
	return XXHash
}

// xxDigest - xxhash.Digest.Reset drops the seed, this wrapper puts it back
type xxDigest struct {
	*xxhash.Digest
	seed uint64
}

// Reset - Resets the digest to its seeded initial state
func (X *xxDigest) Reset() {
	X.Digest.ResetWithSeed(X.seed)
}

// CRC32Algorithm - Algorithm implemented using crc32 with the IEEE polynomial, like crc32.ChecksumIEEE but starting
// from the seed instead of zero. Only the lower 32 bits of the hash are ever set.
type CRC32Algorithm struct {
	seed uint32
}

// NewCRC32Algorithm - Returns a pointer to a new CRC32Algorithm instance
//   - seed is used as initial crc value, a seed of 0 gives the same values as crc32.ChecksumIEEE
func NewCRC32Algorithm(seed uint32) *CRC32Algorithm {
	return &CRC32Algorithm{seed: seed}
}

// NewDigest - Returns a crc32 digest starting at the instance seed
func (C *CRC32Algorithm) NewDigest() Digest {
	return &crcDigest{seed: C.seed, crc: C.seed}
}

// Name - Returns the algorithm name
func (C *CRC32Algorithm) Name() string {
	return CRC32
}

type crcDigest struct {
	seed uint32
	crc  uint32
}

func (C *crcDigest) Write(p []byte) (int, error) {
	C.crc = crc32.Update(C.crc, crc32.IEEETable, p)
	return len(p), nil
}

// WriteString - Updates the crc with the bytes of s, read in place
func (C *crcDigest) WriteString(s string) (int, error) {
	return C.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

func (C *crcDigest) Sum64() uint64 {
	return uint64(C.crc)
}

func (C *crcDigest) Reset() {
	C.crc = C.seed
}

// NewHashAlgorithm - Returns one of the built-in algorithms given its name.
//   - name is one of MapHash, XXHash or CRC32
//   - seed is passed to algorithms that take a seed (truncated to 32 bits for CRC32), MapHash always uses a random seed
//
// It returns:
//   - algorithm is the requested HashAlgorithm
//   - err is a standard error if the name is unknown
func NewHashAlgorithm(name string, seed uint64) (algorithm HashAlgorithm, err error) {
	switch name {
	case MapHash:
		algorithm = NewMapHashAlgorithm()
	case XXHash:
		algorithm = NewXXHashAlgorithm(seed)
	case CRC32:
		algorithm = NewCRC32Algorithm(uint32(seed))
	default:
		err = fmt.Errorf("unknown hash algorithm %q, should be one of %s, %s or %s", name, MapHash, XXHash, CRC32)
	}

	return
}
