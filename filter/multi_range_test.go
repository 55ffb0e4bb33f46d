package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiRangeCartesianMerge(t *testing.T) {
	a := NewMultiRange([]Filter{
		NewFloatRange(0, 1, false, false, false, false, false, false),
		NewFloatRange(5, 6, false, false, false, false, false, false),
	}, false, false)
	b := NewMultiRange([]Filter{
		NewFloatRange(0.5, 5.5, false, false, false, false, false, false),
	}, false, false)

	merged := a.MergeWith(b)

	type probe struct {
		v    float32
		want bool
	}
	probes := []probe{
		{0.2, false},
		{0.7, true},
		{3, false},
		{5.2, true},
		{5.9, false},
	}
	for _, p := range probes {
		assert.Equal(t, p.want, merged.TestFloat(p.v), "value %v", p.v)
	}
}

func TestMultiRangeDisjunction(t *testing.T) {
	mr := NewMultiRange([]Filter{
		NewFloatRange(0, 1, false, false, false, false, false, false),
		NewFloatRange(10, 20, false, false, false, false, false, false),
	}, false, false)

	assert.True(t, mr.TestFloat(0.5))
	assert.True(t, mr.TestFloat(15))
	assert.False(t, mr.TestFloat(5))
}

func TestMultiRangeMergeWithBytesRangePanics(t *testing.T) {
	mr := NewMultiRange([]Filter{
		NewFloatRange(0, 1, false, false, false, false, false, false),
	}, false, false)
	assert.Panics(t, func() {
		mr.MergeWith(NewBytesRange([]byte("a"), []byte("z"), false, false, false, false, false))
	})
}

func TestMultiRangeMergeWithIsNotNull(t *testing.T) {
	mr := NewMultiRange([]Filter{
		NewFloatRange(0, 1, false, false, false, false, false, false),
	}, true, false)
	merged := mr.MergeWith(NewIsNotNull())
	assert.False(t, merged.TestNull())
}
