package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlwaysTrue(t *testing.T) {
	f := NewAlwaysTrue()
	assert.True(t, f.TestInt64(42))
	assert.True(t, f.TestNull())
	assert.Equal(t, KindAlwaysTrue, f.Kind())
}

func TestAlwaysFalse(t *testing.T) {
	f := NewAlwaysFalse()
	assert.False(t, f.TestInt64(42))
	assert.False(t, f.TestNull())
}

func TestIsNullMergeWithIsNotNull(t *testing.T) {
	merged := NewIsNull().MergeWith(NewIsNotNull())
	assert.Equal(t, KindAlwaysFalse, merged.Kind())
}

func TestIsNullMergeWithAlwaysTrue(t *testing.T) {
	merged := NewIsNull().MergeWith(NewAlwaysTrue())
	assert.Equal(t, KindIsNull, merged.Kind())
	assert.True(t, merged.TestNull())
}

func TestIsNotNullRejectsNull(t *testing.T) {
	f := NewIsNotNull()
	assert.False(t, f.TestNull())
	assert.True(t, f.TestInt64(0))
}

func TestAlwaysTrueMergeWithNull(t *testing.T) {
	bigint := NewBigintRange(1, 10, true)
	merged := NewAlwaysTrue().MergeWith(bigint)
	assert.Equal(t, KindBigintRange, merged.Kind())
	assert.True(t, merged.TestNull())

	mergedNoNull := NewAlwaysTrue().MergeWith(NewBigintRange(1, 10, false))
	assert.False(t, mergedNoNull.TestNull())
}

func TestClonePreservesValueOverridesNull(t *testing.T) {
	f := NewBigintRange(1, 10, true)
	override := false
	clone := f.Clone(&override)
	assert.False(t, clone.TestNull())
	assert.True(t, clone.TestInt64(5))
}
