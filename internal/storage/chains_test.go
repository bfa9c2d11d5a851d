//go:build unit

package storage

import (
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func probe(key int) hashfunc.Probe[int] {
	return hashfunc.KeyProbe[int]{Key: key, Hasher: hashfunc.Integers[int]{}}
}

func TestNewChains(t *testing.T) {
	t.Run("allocates all buckets", func(t *testing.T) {
		// Execute
		chains := NewChains[int, string](8)

		// Check
		assert.Equal(t, 8, chains.NumberOfBuckets(), "correct number of buckets")
		for i := 0; i < 8; i++ {
			assert.Equal(t, 0, chains.BucketLength(i), "bucket %d empty", i)
		}
	})

	t.Run("zero value has no buckets", func(t *testing.T) {
		// Prepare
		var chains Chains[int, string]

		// Execute and check
		assert.Equal(t, 0, chains.NumberOfBuckets(), "no buckets")
	})
}

func TestChains_Find(t *testing.T) {
	t.Run("finds appended records", func(t *testing.T) {
		// Prepare
		chains := NewChains[int, string](2)
		chains.Append(1, 10, "a")
		chains.Append(1, 11, "b")

		// Execute
		slot := chains.Find(1, probe(11))

		// Check
		assert.Equal(t, 1, slot, "correct slot")
		assert.Equal(t, "b", chains.At(1, slot).Value, "correct record")
		assert.Equal(t, -1, chains.Find(1, probe(12)), "absent key")
		assert.Equal(t, -1, chains.Find(0, probe(10)), "other bucket not scanned")
	})
}

func TestChains_FindKey(t *testing.T) {
	t.Run("finds owned keys through the key hasher", func(t *testing.T) {
		// Prepare
		chains := NewChains[string, int](2)
		chains.Append(0, "foo", 1)
		chains.Append(0, "var", 2)
		kh := hashfunc.Strings{}

		// Execute
		slot := chains.FindKey(0, "var", kh)

		// Check
		assert.Equal(t, 1, slot, "correct slot")
		assert.Equal(t, 2, chains.At(0, slot).Value, "correct record")
		assert.Equal(t, -1, chains.FindKey(0, "dfs", kh), "absent key")
		assert.Equal(t, -1, chains.FindKey(1, "foo", kh), "other bucket not scanned")
	})
}

func TestChains_SwapRemove(t *testing.T) {
	t.Run("moves the last record into the removed slot", func(t *testing.T) {
		// Prepare
		chains := NewChains[int, string](1)
		for i, v := range []string{"a", "b", "c"} {
			chains.Append(0, i, v)
		}

		// Execute
		record := chains.SwapRemove(0, 0)

		// Check
		assert.Equal(t, Record[int, string]{Key: 0, Value: "a"}, record, "removed record returned")
		assert.Equal(t, 2, chains.BucketLength(0), "bucket shrunk")
		assert.Equal(t, "c", chains.At(0, 0).Value, "last moved to front")
		assert.Equal(t, "b", chains.At(0, 1).Value, "middle kept")
	})

	t.Run("clears the vacated slot", func(t *testing.T) {
		// Prepare
		chains := NewChains[int, *int](1)
		v := 1
		chains.Append(0, 0, &v)
		backing := chains.buckets[0][:1]

		// Execute
		chains.SwapRemove(0, 0)

		// Check
		assert.Nil(t, backing[0].Value, "no reference kept")
	})
}

func TestChains_Pop(t *testing.T) {
	t.Run("pops from the end until empty", func(t *testing.T) {
		// Prepare
		chains := NewChains[int, string](1)
		chains.Append(0, 1, "a")
		chains.Append(0, 2, "b")

		// Execute
		first, ok1 := chains.Pop(0)
		second, ok2 := chains.Pop(0)
		_, ok3 := chains.Pop(0)

		// Check
		assert.True(t, ok1, "first pop")
		assert.Equal(t, 2, first.Key, "last record first")
		assert.True(t, ok2, "second pop")
		assert.Equal(t, 1, second.Key, "then the one before")
		assert.False(t, ok3, "empty bucket")
	})
}

func TestChains_Rehash(t *testing.T) {
	t.Run("moves every record to its new bucket", func(t *testing.T) {
		// Prepare
		chains := NewChains[int, int](1)
		for i := 0; i < 20; i++ {
			chains.Append(0, i, i*10)
		}

		// Execute
		rehashed := chains.Rehash(4, func(key int) int { return key % 4 })

		// Check
		assert.Equal(t, 0, chains.NumberOfBuckets(), "old array released")
		assert.Equal(t, 4, rehashed.NumberOfBuckets(), "new size")
		total := 0
		for b := 0; b < 4; b++ {
			total += rehashed.BucketLength(b)
			for s := 0; s < rehashed.BucketLength(b); s++ {
				r := rehashed.At(b, s)
				assert.Equal(t, b, r.Key%4, "record in its bucket")
				assert.Equal(t, r.Key*10, r.Value, "value moved with key")
			}
		}
		assert.Equal(t, 20, total, "no record lost")
	})
}

func TestChains_Detach(t *testing.T) {
	t.Run("hands over the buckets", func(t *testing.T) {
		// Prepare
		chains := NewChains[int, int](2)
		chains.Append(1, 1, 1)

		// Execute
		detached := chains.Detach()

		// Check
		assert.Equal(t, 0, chains.NumberOfBuckets(), "receiver left without buckets")
		assert.Equal(t, 2, detached.NumberOfBuckets(), "buckets handed over")
		assert.Equal(t, 1, detached.BucketLength(1), "records handed over")
	})
}
