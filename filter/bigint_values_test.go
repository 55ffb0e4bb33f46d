package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmaskMergeWithHashTable(t *testing.T) {
	bitmask := NewBigintValuesUsingBitmask(0, 20, []int64{1, 3, 5, 7, 9}, false)
	hashTable := NewBigintValuesUsingHashTable(-1_000_000, 1_000_000, []int64{3, 7, 500_000}, false)

	merged := bitmask.MergeWith(hashTable)
	assert.True(t, merged.TestInt64(3))
	assert.True(t, merged.TestInt64(7))
	assert.False(t, merged.TestInt64(1))
	assert.False(t, merged.TestInt64(500_000))
}

func TestHashTableMergeWithBitmaskIsSymmetric(t *testing.T) {
	bitmask := NewBigintValuesUsingBitmask(0, 20, []int64{1, 3, 5, 7, 9}, false)
	hashTable := NewBigintValuesUsingHashTable(-1_000_000, 1_000_000, []int64{3, 7, 500_000}, false)

	a := bitmask.MergeWith(hashTable)
	b := hashTable.MergeWith(bitmask)
	for v := int64(-5); v < 25; v++ {
		assert.Equal(t, a.TestInt64(v), b.TestInt64(v), "value %d", v)
	}
}

func TestHashTableHandlesEmptyMarkerValue(t *testing.T) {
	f := NewBigintValuesUsingHashTable(kEmptyMarker, 10, []int64{kEmptyMarker, 0, 5}, false)
	assert.True(t, f.TestInt64(kEmptyMarker))
	assert.True(t, f.TestInt64(0))
	assert.True(t, f.TestInt64(5))
	assert.False(t, f.TestInt64(3))
}

func TestBigintValuesTooFewRejected(t *testing.T) {
	assert.Panics(t, func() { NewBigintValuesUsingBitmask(0, 10, []int64{1}, false) })
	assert.Panics(t, func() { NewBigintValuesUsingHashTable(0, 10, []int64{1}, false) })
}

func TestBitmaskMergeWithMultiRange(t *testing.T) {
	bitmask := NewBigintValuesUsingBitmask(0, 20, []int64{1, 3, 5, 7, 9, 11, 13, 15}, false)
	mr := NewBigintMultiRange([]*BigintRange{
		NewBigintRange(0, 5, false),
		NewBigintRange(12, 20, false),
	}, false)

	merged := bitmask.MergeWith(mr)
	assert.True(t, merged.TestInt64(1))
	assert.True(t, merged.TestInt64(3))
	assert.True(t, merged.TestInt64(5))
	assert.True(t, merged.TestInt64(13))
	assert.True(t, merged.TestInt64(15))
	assert.False(t, merged.TestInt64(7))
	assert.False(t, merged.TestInt64(9))
	assert.False(t, merged.TestInt64(11))
}
