package chainmap

import (
	"github.com/gostonefire/chainmap/internal/storage"
	"iter"
)

// Iterator - Is used to iterate over the pairs of a table one by one without changing it.
// Buckets are visited in ascending order and records within a bucket in slot order, which has no meaning beyond
// visiting every pair exactly once. Advancing an iterator after a structural modification of its table panics
// with ConcurrentModification, replacing values in place is allowed.
type Iterator[K, V any] struct {
	table    *Table[K, V]
	bucketNo int
	slot     int
	version  uint64
}

// Iter - Returns a new iterator positioned before the first pair. Any number of iterators can be created.
func (T *Table[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{table: T, version: T.version}
}

// All - Returns an iterator over all pairs for use with range. Values are yielded as pointers into the table.
func (T *Table[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		it := T.Iter()
		for key, value, ok := it.Next(); ok; key, value, ok = it.Next() {
			if !yield(key, value) {
				return
			}
		}
	}
}

// HasNext - Returns true if there are more pairs to be fetched from a call to Next
func (I *Iterator[K, V]) HasNext() bool {
	I.check()
	I.skipEmpty()

	return I.bucketNo < I.table.chains.NumberOfBuckets()
}

// Next - Returns the next pair.
// It returns:
//   - key is the key of the pair
//   - value is a pointer to the value stored in the table
//   - ok is false when there are no more pairs, key and value are then zero
func (I *Iterator[K, V]) Next() (key K, value *V, ok bool) {
	if !I.HasNext() {
		return
	}

	r := I.table.chains.At(I.bucketNo, I.slot)
	I.slot++

	return r.Key, &r.Value, true
}

// skipEmpty - Moves past exhausted buckets
func (I *Iterator[K, V]) skipEmpty() {
	chains := &I.table.chains
	for I.bucketNo < chains.NumberOfBuckets() && I.slot >= chains.BucketLength(I.bucketNo) {
		I.bucketNo++
		I.slot = 0
	}
}

func (I *Iterator[K, V]) check() {
	if I.version != I.table.version {
		panic(ConcurrentModification{})
	}
}

// DrainIterator - Is used to take the pairs out of a table one by one. It owns the storage the table had when
// Drain was called, the table itself is left empty.
type DrainIterator[K, V any] struct {
	chains    storage.Chains[K, V]
	bucketNo  int
	remaining int
}

// Drain - Moves every pair out of the table into a new DrainIterator. The table should be treated as consumed
// afterwards: Go can not forbid further use, so it is left as an empty table without buckets rather than in an
// unusable state. Iterators and entries obtained before the call become stale.
func (T *Table[K, V]) Drain() *DrainIterator[K, V] {
	d := &DrainIterator[K, V]{
		chains:    T.chains.Detach(),
		remaining: T.count,
	}
	T.count = 0
	T.version++

	return d
}

// HasNext - Returns true if there are more pairs to be fetched from a call to Next
func (D *DrainIterator[K, V]) HasNext() bool {
	return D.remaining > 0
}

// Remaining - Returns the number of pairs not yet taken
func (D *DrainIterator[K, V]) Remaining() int {
	return D.remaining
}

// Next - Removes and returns the next pair, taking the last record of the lowest non-empty bucket.
// ok is false when the iterator is exhausted.
func (D *DrainIterator[K, V]) Next() (key K, value V, ok bool) {
	for D.bucketNo < D.chains.NumberOfBuckets() {
		if r, found := D.chains.Pop(D.bucketNo); found {
			D.remaining--
			return r.Key, r.Value, true
		}
		D.bucketNo++
	}

	return
}
