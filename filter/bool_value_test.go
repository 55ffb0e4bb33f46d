package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolValueTest(t *testing.T) {
	f := NewBoolValue(true, false)
	assert.True(t, f.TestBool(true))
	assert.False(t, f.TestBool(false))
}

func TestBoolValueMergeWithSameValue(t *testing.T) {
	a := NewBoolValue(true, true)
	b := NewBoolValue(true, false)
	merged := a.MergeWith(b)
	assert.Equal(t, KindBoolValue, merged.Kind())
	assert.False(t, merged.TestNull())
	assert.True(t, merged.TestBool(true))
}

func TestBoolValueMergeWithOppositeValue(t *testing.T) {
	a := NewBoolValue(true, true)
	b := NewBoolValue(false, true)
	merged := a.MergeWith(b)
	assert.Equal(t, KindIsNull, merged.Kind())
}

func TestBoolValueMergeWithUnsupportedPanics(t *testing.T) {
	a := NewBoolValue(true, false)
	assert.Panics(t, func() { a.MergeWith(NewBigintRange(1, 10, false)) })
}
