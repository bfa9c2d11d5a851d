//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/chainmap"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"strconv"
	"testing"
)

type TestCaseStressTest struct {
	algorithmName string
	algorithm     hashfunc.HashAlgorithm
	nOperations   int
	keySpace      int
}

// checkAgainst - Verifies that table holds exactly the pairs of reference
func checkAgainst(t *testing.T, table *chainmap.Table[string, int], reference map[string]int) {
	assert.Equal(t, len(reference), table.Len(), "same length as reference")

	for k, v := range reference {
		value, ok := table.Get(k)
		if !assert.True(t, ok, "finds %s", k) {
			return
		}
		assert.Equal(t, v, *value, "correct value for %s", k)
	}

	seen := 0
	for k, v := range table.All() {
		seen++
		assert.Equal(t, reference[k], *v, "iterated value for %s", k)
	}
	assert.Equal(t, len(reference), seen, "iterates every pair")
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all algorithms", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{algorithmName: "MapHash", algorithm: hashfunc.NewMapHashAlgorithm(), nOperations: 1000000, keySpace: 100000},
			{algorithmName: "XXHash", algorithm: hashfunc.NewXXHashAlgorithm(123), nOperations: 1000000, keySpace: 100000},
			{algorithmName: "CRC32", algorithm: hashfunc.NewCRC32Algorithm(123), nOperations: 1000000, keySpace: 100000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("random inserts, entries and removes for %s", test.algorithmName), func(t *testing.T) {
				// Prepare
				r := rand.New(rand.NewSource(123))
				reference := make(map[string]int)
				table, err := chainmap.NewWithConf[string, int](chainmap.Conf[string]{
					KeyHasher:     hashfunc.Strings{},
					HashAlgorithm: test.algorithm,
				})
				assert.NoError(t, err, "create table")

				// Execute
				for i := 0; i < test.nOperations; i++ {
					key := strconv.Itoa(r.Intn(test.keySpace))
					switch r.Intn(4) {
					case 0, 1:
						previous, replaced := table.Insert(key, i)
						refPrevious, refReplaced := reference[key]
						assert.Equal(t, refReplaced, replaced, "insert replaced")
						if refReplaced {
							assert.Equal(t, refPrevious, previous, "insert previous value")
						}
						reference[key] = i
					case 2:
						*table.Entry(key).OrDefault() += 1
						reference[key] += 1
					case 3:
						removed, ok := table.RemoveBy(hashfunc.BytesProbe(key))
						refRemoved, refOk := reference[key]
						assert.Equal(t, refOk, ok, "remove found")
						if refOk {
							assert.Equal(t, refRemoved, removed, "removed value")
						}
						delete(reference, key)
					}
				}

				// Check
				checkAgainst(t, table, reference)

				drained := 0
				d := table.Drain()
				for key, value, ok := d.Next(); ok; key, value, ok = d.Next() {
					assert.Equal(t, reference[key], value, "drained value for %s", key)
					drained++
				}
				assert.Equal(t, len(reference), drained, "drains every pair")
				assert.True(t, table.IsEmpty(), "table empty after drain")
			})
		}
	})
}
