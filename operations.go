package chainmap

import "github.com/gostonefire/chainmap/hashfunc"

// initialBuckets - Number of buckets allocated by the first growth
const initialBuckets = 1

// Get - Gets the value stored for key.
//   - key is the key to look for
//
// It returns:
//   - value is a pointer to the stored value, valid until the next structural modification of the table, nil if not found
//   - ok is true if key was found
func (T *Table[K, V]) Get(key K) (value *V, ok bool) {
	bucketNo, slot, ok := T.locateKey(key)
	if !ok {
		return
	}

	value = &T.chains.At(bucketNo, slot).Value

	return
}

// GetBy - Gets the value stored for the key that probe stands for, without constructing an owned key.
// The probe must agree with the table's KeyHasher, see hashfunc.Probe.
//
// It returns:
//   - value is a pointer to the stored value, valid until the next structural modification of the table, nil if not found
//   - ok is true if a matching key was found
func (T *Table[K, V]) GetBy(probe hashfunc.Probe[K]) (value *V, ok bool) {
	bucketNo, slot, ok := T.locate(probe)
	if !ok {
		return
	}

	value = &T.chains.At(bucketNo, slot).Value

	return
}

// ContainsKey - Returns true if key is present in the table
func (T *Table[K, V]) ContainsKey(key K) bool {
	_, ok := T.Get(key)
	return ok
}

// ContainsBy - Returns true if the key that probe stands for is present in the table
func (T *Table[K, V]) ContainsBy(probe hashfunc.Probe[K]) bool {
	_, ok := T.GetBy(probe)
	return ok
}

// Insert - Updates an existing pair with a new value or adds the pair if no existing is found with an equal key.
// The table grows first if needed.
//   - key is the key of the pair
//   - value is the value to store
//
// It returns:
//   - previous is the value that was replaced, zero value if the key was not present
//   - replaced is true if the key was already present
func (T *Table[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	T.reserve()

	bucketNo := T.bucketNo(T.hashKey(key))
	if slot := T.chains.FindKey(bucketNo, key, T.keys); slot >= 0 {
		r := T.chains.At(bucketNo, slot)
		previous, r.Value = r.Value, value
		replaced = true
		return
	}

	T.chains.Append(bucketNo, key, value)
	T.count++
	T.version++

	return
}

// Remove - Returns the value stored for key and removes the pair from the table.
//
// It returns:
//   - removed is the value of the removed pair, zero value if the key was not present
//   - ok is true if a pair was removed
func (T *Table[K, V]) Remove(key K) (removed V, ok bool) {
	bucketNo, slot, ok := T.locateKey(key)
	if !ok {
		return
	}

	return T.removeAt(bucketNo, slot), true
}

// RemoveBy - Same as Remove but takes a borrowed form of the key, see hashfunc.Probe
func (T *Table[K, V]) RemoveBy(probe hashfunc.Probe[K]) (removed V, ok bool) {
	bucketNo, slot, ok := T.locate(probe)
	if !ok {
		return
	}

	return T.removeAt(bucketNo, slot), true
}

// removeAt - Removes the record at slot in bucket bucketNo and returns its value
func (T *Table[K, V]) removeAt(bucketNo, slot int) V {
	removed := T.chains.SwapRemove(bucketNo, slot).Value
	T.count--
	T.version++

	return removed
}

// locate - Finds the bucket and slot of the key matching probe. A table without buckets finds nothing.
func (T *Table[K, V]) locate(probe hashfunc.Probe[K]) (bucketNo, slot int, ok bool) {
	if T.chains.NumberOfBuckets() == 0 {
		return
	}

	bucketNo = T.bucketNo(hashfunc.SumProbe(T.digest, probe))
	slot = T.chains.Find(bucketNo, probe)
	ok = slot >= 0

	return
}

// locateKey - Same as locate but for an owned key
func (T *Table[K, V]) locateKey(key K) (bucketNo, slot int, ok bool) {
	if T.chains.NumberOfBuckets() == 0 {
		return
	}

	bucketNo = T.bucketNo(T.hashKey(key))
	slot = T.chains.FindKey(bucketNo, key, T.keys)
	ok = slot >= 0

	return
}

// reserve - Grows the table if it has no buckets or if its load exceeds 3/4
func (T *Table[K, V]) reserve() {
	n := T.chains.NumberOfBuckets()
	if n == 0 || T.count > 3*n/4 {
		T.grow()
	}
}

// grow - Rebuilds the bucket array with double the number of buckets, or initialBuckets if there are none.
// Every pair gets a new bucket number since the modulus changes.
func (T *Table[K, V]) grow() {
	target := initialBuckets
	if n := T.chains.NumberOfBuckets(); n > 0 {
		target = 2 * n
	}

	T.chains = T.chains.Rehash(target, func(key K) int {
		return int(T.hashKey(key) % uint64(target))
	})
	T.version++
}

// hashKey - Returns the hash of an owned key
func (T *Table[K, V]) hashKey(key K) uint64 {
	return hashfunc.Sum(T.digest, T.keys, key)
}

// bucketNo - Returns the bucket number for hash, the table must have buckets
func (T *Table[K, V]) bucketNo(hash uint64) int {
	return int(hash % uint64(T.chains.NumberOfBuckets()))
}
