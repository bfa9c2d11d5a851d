package chainmap

// Entry - A single-use handle to the slot of one key in a table, either occupied by an existing pair or vacant.
// It is obtained from Table.Entry and lets a single bucket scan serve both the test and the insert.
//
// OrInsert, OrInsertWith and OrDefault consume the entry. Using an entry again after that, or after any structural
// modification of its table, panics with StaleEntry.
type Entry[K, V any] struct {
	table    *Table[K, V]
	key      K
	bucketNo int
	slot     int
	version  uint64
	consumed bool
}

// Entry - Returns the entry for key. The table grows first if needed, exactly as before an Insert, then the target
// bucket is scanned once. Dropping the entry without consuming it leaves the table as it is.
func (T *Table[K, V]) Entry(key K) *Entry[K, V] {
	T.reserve()

	bucketNo := T.bucketNo(T.hashKey(key))

	return &Entry[K, V]{
		table:    T,
		key:      key,
		bucketNo: bucketNo,
		slot:     T.chains.FindKey(bucketNo, key, T.keys),
		version:  T.version,
	}
}

// Occupied - Returns true if the key of the entry is present in the table
func (E *Entry[K, V]) Occupied() bool {
	return E.slot >= 0
}

// Key - Returns the key the entry was created for
func (E *Entry[K, V]) Key() K {
	return E.key
}

// AndModify - Calls f with a pointer to the existing value if the entry is occupied. The entry is not consumed and
// is returned to allow chaining, for instance
//
//	*t.Entry(word).AndModify(func(n *int) { *n++ }).OrInsert(1)
func (E *Entry[K, V]) AndModify(f func(value *V)) *Entry[K, V] {
	E.check()
	if E.Occupied() {
		f(&E.table.chains.At(E.bucketNo, E.slot).Value)
	}

	return E
}

// OrInsert - Returns a pointer to the existing value if the entry is occupied, otherwise stores value for the
// entry key and returns a pointer to it. value is always evaluated by the caller, use OrInsertWith to avoid that.
func (E *Entry[K, V]) OrInsert(value V) *V {
	E.check()
	E.consumed = true

	if E.Occupied() {
		return &E.table.chains.At(E.bucketNo, E.slot).Value
	}

	return E.insert(value)
}

// OrInsertWith - Same as OrInsert but the value is produced by calling producer, which happens only if the entry
// is vacant and then exactly once.
func (E *Entry[K, V]) OrInsertWith(producer func() V) *V {
	E.check()
	E.consumed = true

	if E.Occupied() {
		return &E.table.chains.At(E.bucketNo, E.slot).Value
	}

	value := producer()
	if E.version != E.table.version {
		panic(StaleEntry{msg: "table modified by entry value producer"})
	}

	return E.insert(value)
}

// OrDefault - Same as OrInsertWith with a producer returning the zero value of V
func (E *Entry[K, V]) OrDefault() *V {
	return E.OrInsertWith(func() (v V) { return })
}

// insert - Appends the entry key with value to the target bucket of a vacant entry
func (E *Entry[K, V]) insert(value V) *V {
	T := E.table

	slot := T.chains.Append(E.bucketNo, E.key, value)
	T.count++
	T.version++

	return &T.chains.At(E.bucketNo, slot).Value
}

// check - Panics if the entry was consumed or its table was structurally modified since the entry was created
func (E *Entry[K, V]) check() {
	if E.consumed {
		panic(StaleEntry{msg: "entry already consumed"})
	}
	if E.version != E.table.version {
		panic(StaleEntry{msg: "table modified since entry was created"})
	}
}
