package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigintRangeTestInt64(t *testing.T) {
	f := NewBigintRange(5, 10, false)
	assert.True(t, f.TestInt64(5))
	assert.True(t, f.TestInt64(10))
	assert.False(t, f.TestInt64(4))
	assert.False(t, f.TestInt64(11))
}

func TestBigintRangeInvalidBounds(t *testing.T) {
	assert.Panics(t, func() { NewBigintRange(10, 5, false) })
}

func TestBigintRangeMergeWithOverlapping(t *testing.T) {
	a := NewBigintRange(1, 10, true)
	b := NewBigintRange(5, 20, false)
	merged := a.MergeWith(b)

	assert.Equal(t, KindBigintRange, merged.Kind())
	r := merged.(*BigintRange)
	assert.Equal(t, int64(5), r.Lower())
	assert.Equal(t, int64(10), r.Upper())
	assert.False(t, merged.TestNull())
}

func TestBigintRangeMergeWithDisjointNullFree(t *testing.T) {
	a := NewBigintRange(1, 3, false)
	b := NewBigintRange(10, 20, false)
	merged := a.MergeWith(b)
	assert.Equal(t, KindAlwaysFalse, merged.Kind())
}

func TestBigintRangeMergeWithDisjointPreservesNull(t *testing.T) {
	a := NewBigintRange(1, 3, true)
	b := NewBigintRange(10, 20, true)
	merged := a.MergeWith(b)
	assert.Equal(t, KindIsNull, merged.Kind())
}

func TestBigintRangeTestInt64Range(t *testing.T) {
	f := NewBigintRange(5, 10, false)
	assert.True(t, f.TestInt64Range(1, 6, false))
	assert.False(t, f.TestInt64Range(20, 30, false))
	assert.False(t, f.TestInt64Range(20, 30, true)) // hasNull doesn't help: nullAllowed is false

	withNull := NewBigintRange(5, 10, true)
	assert.True(t, withNull.TestInt64Range(20, 30, true))
}

func TestBigintRangeMergeWithIsNotNull(t *testing.T) {
	merged := NewBigintRange(1, 10, true).MergeWith(NewIsNotNull())
	assert.Equal(t, KindBigintRange, merged.Kind())
	assert.False(t, merged.TestNull())
}
