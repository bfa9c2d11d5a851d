package storage

import "github.com/gostonefire/chainmap/hashfunc"

// Record - Represents one key value pair in a bucket
type Record[K, V any] struct {
	Key   K
	Value V
}

// Chains - Represents the bucket array of the Separate Chaining Collision Resolution Technique.
// Each bucket is a slice of records, the order within a bucket carries no meaning and changes on removal.
// Chains knows nothing about hashing, callers give it bucket numbers.
type Chains[K, V any] struct {
	buckets [][]Record[K, V]
}

// NewChains - Returns a new bucket array with numberOfBuckets empty buckets.
// All buckets are allocated up front.
func NewChains[K, V any](numberOfBuckets int) Chains[K, V] {
	return Chains[K, V]{buckets: make([][]Record[K, V], numberOfBuckets)}
}

// NumberOfBuckets - Returns the number of buckets, zero for a never allocated bucket array
func (C *Chains[K, V]) NumberOfBuckets() int {
	return len(C.buckets)
}

// BucketLength - Returns the number of records in bucket bucketNo
func (C *Chains[K, V]) BucketLength(bucketNo int) int {
	return len(C.buckets[bucketNo])
}

// Find - Scans bucket bucketNo for a record whose key matches the probe.
//   - bucketNo is the bucket to scan
//   - probe is the key, or borrowed form of it, to look for
//
// It returns:
//   - slot is the index of the matching record within the bucket, or -1 if there is none
func (C *Chains[K, V]) Find(bucketNo int, probe hashfunc.Probe[K]) (slot int) {
	for i := range C.buckets[bucketNo] {
		if probe.Matches(C.buckets[bucketNo][i].Key) {
			return i
		}
	}

	return -1
}

// FindKey - Scans bucket bucketNo for a record whose key kh reports as equal to key.
// Same as Find but for an owned key, compared through the key hasher directly.
//
// It returns:
//   - slot is the index of the matching record within the bucket, or -1 if there is none
func (C *Chains[K, V]) FindKey(bucketNo int, key K, kh hashfunc.KeyHasher[K]) (slot int) {
	for i := range C.buckets[bucketNo] {
		if kh.Equal(key, C.buckets[bucketNo][i].Key) {
			return i
		}
	}

	return -1
}

// At -Returns a pointer to the record at slot in bucket bucketNo.
// The pointer is valid until the next Append, SwapRemove, Pop or Rehash.
func (C *Chains[K, V]) At(bucketNo, slot int) *Record[K, V] {
	return &C.buckets[bucketNo][slot]
}

// Append - Adds a record at the end of bucket bucketNo and returns its slot
func (C *Chains[K, V]) Append(bucketNo int, key K, value V) (slot int) {
	C.buckets[bucketNo] = append(C.buckets[bucketNo], Record[K, V]{Key: key, Value: value})
	return len(C.buckets[bucketNo]) - 1
}

// SwapRemove - Removes the record at slot in bucket bucketNo by moving the last record of the bucket into its place.
// The vacated last position is zeroed so the bucket does not keep the removed key and value reachable.
func (C *Chains[K, V]) SwapRemove(bucketNo, slot int) (record Record[K, V]) {
	bucket := C.buckets[bucketNo]
	last := len(bucket) - 1

	record = bucket[slot]
	bucket[slot] = bucket[last]
	bucket[last] = Record[K, V]{}
	C.buckets[bucketNo] = bucket[:last]

	return
}

// Pop - Removes and returns the last record of bucket bucketNo.
// It returns ok as false if the bucket is empty.
func (C *Chains[K, V]) Pop(bucketNo int) (record Record[K, V], ok bool) {
	if len(C.buckets[bucketNo]) == 0 {
		return
	}

	return C.SwapRemove(bucketNo, len(C.buckets[bucketNo])-1), true
}

// Rehash - Moves every record into a new bucket array of numberOfBuckets buckets.
// The new array is allocated in full before any record is moved. The receiver is left without buckets.
//   - numberOfBuckets is the size of the new bucket array
//   - bucketNo returns the bucket number in the new array for a key
//
// It returns:
//   - chains is the new bucket array holding all records
func (C *Chains[K, V]) Rehash(numberOfBuckets int, bucketNo func(key K) int) (chains Chains[K, V]) {
	chains = NewChains[K, V](numberOfBuckets)

	for _, bucket := range C.buckets {
		for _, record := range bucket {
			n := bucketNo(record.Key)
			chains.buckets[n] = append(chains.buckets[n], record)
		}
	}
	C.buckets = nil

	return
}

// Detach - Returns the current bucket array and leaves the receiver without buckets
func (C *Chains[K, V]) Detach() (chains Chains[K, V]) {
	chains.buckets = C.buckets
	C.buckets = nil

	return
}
