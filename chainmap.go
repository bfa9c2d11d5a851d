package chainmap

import (
	"fmt"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/storage"
	"iter"
)

// Conf - Is a struct used in the call to NewWithConf holding the hashing configuration of a table.
//   - KeyHasher defines the byte representation and equality of keys, it can not be nil
//   - HashAlgorithm is an optional entry to provide a custom hash algorithm, nil selects the internal seeded maphash algorithm
type Conf[K any] struct {
	KeyHasher     hashfunc.KeyHasher[K]
	HashAlgorithm hashfunc.HashAlgorithm
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Algorithm is the name of the hash algorithm in use
//   - Records is the total number of records stored
//   - Buckets is the current number of buckets
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the fullest bucket
//   - LoadFactor is Records divided by Buckets, zero for a table without buckets
//   - BucketDistribution is the number of records stored in each bucket, nil unless asked for
type HashMapStat struct {
	Algorithm          string
	Records            int
	Buckets            int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int
}

// Pair - A key value pair, used for bulk construction
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Table - An in-memory hash map from K to V using separate chaining.
//
// A Table is not safe for concurrent use. Structural modifications (adding or removing a key, growth, draining)
// invalidate value pointers previously handed out, make live iterators panic on their next advance and make
// unconsumed entries panic when used. The zero value is not usable, create tables with New or NewWithConf.
type Table[K, V any] struct {
	chains    storage.Chains[K, V]
	count     int
	keys      hashfunc.KeyHasher[K]
	algorithm hashfunc.HashAlgorithm
	digest    hashfunc.Digest
	version   uint64
}

// New - Returns a new empty table for comparable keys using the default key hasher for K and the internal seeded
// maphash algorithm. No buckets are allocated until the first insertion.
func New[K comparable, V any]() *Table[K, V] {
	table, _ := NewWithConf[K, V](Conf[K]{KeyHasher: hashfunc.Default[K]()})
	return table
}

// NewWithConf - Returns a new empty table using the key hasher and hash algorithm in conf.
// This is the constructor to use for keys that are not comparable, such as []byte, or to choose the algorithm.
//   - conf is a Conf struct, a nil HashAlgorithm selects the internal algorithm
//
// It returns:
//   - table is a pointer to a new empty Table
//   - err is a standard error if conf is not valid
func NewWithConf[K, V any](conf Conf[K]) (table *Table[K, V], err error) {
	if conf.KeyHasher == nil {
		err = fmt.Errorf("key hasher can not be nil")
		return
	}

	if conf.HashAlgorithm == nil {
		conf.HashAlgorithm = hashfunc.NewMapHashAlgorithm()
	}

	table = &Table[K, V]{
		keys:      conf.KeyHasher,
		algorithm: conf.HashAlgorithm,
		digest:    conf.HashAlgorithm.NewDigest(),
	}

	return
}

// FromPairs - Returns a new table holding the given pairs. Pairs are inserted in order, so for a repeated key
// the last value wins.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *Table[K, V] {
	table := New[K, V]()
	for _, p := range pairs {
		table.Insert(p.Key, p.Value)
	}

	return table
}

// FromSeq - Returns a new table holding the pairs of seq, inserted in the order seq yields them
func FromSeq[K comparable, V any](seq iter.Seq2[K, V]) *Table[K, V] {
	table := New[K, V]()
	for k, v := range seq {
		table.Insert(k, v)
	}

	return table
}

// Len - Returns the number of key value pairs in the table
func (T *Table[K, V]) Len() int {
	return T.count
}

// IsEmpty - Returns true if the table holds no pairs
func (T *Table[K, V]) IsEmpty() bool {
	return T.count == 0
}

// Capacity - Returns the current number of buckets
func (T *Table[K, V]) Capacity() int {
	return T.chains.NumberOfBuckets()
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Buckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (T *Table[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	nBuckets := T.chains.NumberOfBuckets()

	hashMapStat.Algorithm = T.algorithm.Name()
	hashMapStat.Buckets = nBuckets
	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int, nBuckets)
	}

	for i := 0; i < nBuckets; i++ {
		n := T.chains.BucketLength(i)
		hashMapStat.Records += n
		if n > 0 {
			hashMapStat.UsedBuckets++
		}
		if n > hashMapStat.LongestChain {
			hashMapStat.LongestChain = n
		}
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = n
		}
	}

	if nBuckets > 0 {
		hashMapStat.LoadFactor = float64(hashMapStat.Records) / float64(nBuckets)
	}

	return
}
