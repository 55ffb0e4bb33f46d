package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatRangeNaNPolicy(t *testing.T) {
	rejectNaN := NewFloatRange(0, 1, false, false, false, false, false, false)
	assert.False(t, rejectNaN.TestFloat(float32(math.NaN())))

	allowNaN := NewFloatRange(0, 1, false, false, false, false, true, false)
	assert.True(t, allowNaN.TestFloat(float32(math.NaN())))
}

func TestFloatRangeBounds(t *testing.T) {
	f := NewFloatRange(0, 1, false, false, false, false, false, false)
	assert.True(t, f.TestFloat(0))
	assert.True(t, f.TestFloat(1))
	assert.True(t, f.TestFloat(0.5))
	assert.False(t, f.TestFloat(-0.1))
	assert.False(t, f.TestFloat(1.1))
}

func TestFloatRangeExclusiveBounds(t *testing.T) {
	f := NewFloatRange(0, 1, true, true, false, false, false, false)
	assert.False(t, f.TestFloat(0))
	assert.False(t, f.TestFloat(1))
	assert.True(t, f.TestFloat(0.5))
}

func TestDoubleRangeNaNPolicy(t *testing.T) {
	f := NewDoubleRange(0, 1, false, false, false, false, false, false)
	assert.False(t, f.TestDouble(math.NaN()))
}

func TestDoubleRangeMergeWithIntersects(t *testing.T) {
	a := NewDoubleRange(0, 10, false, false, false, false, true, true)
	b := NewDoubleRange(5, 20, false, false, false, false, true, false)
	merged := a.MergeWith(b).(*DoubleRange)
	assert.Equal(t, 5.0, merged.Lower())
	assert.Equal(t, 10.0, merged.Upper())
	assert.False(t, merged.TestNull())
}
