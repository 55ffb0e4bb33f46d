package filter

import (
	"bytes"
	"sort"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// BytesValues is an explicit set of byte strings, with lower/upper
// bounds cached at construction for cheap range pruning.
type BytesValues struct {
	base
	values       [][]byte
	lower, upper []byte
}

func NewBytesValues(values [][]byte, nullAllowed bool) *BytesValues {
	require(len(values) > 0, cerrors.ErrTooFewValues, "BytesValues requires at least 1 value, got %d", len(values))

	copied := make([][]byte, len(values))
	lower, upper := values[0], values[0]
	for i, v := range values {
		copied[i] = append([]byte(nil), v...)
		if compareBytes(v, lower) < 0 {
			lower = v
		}
		if compareBytes(v, upper) > 0 {
			upper = v
		}
	}
	sort.Slice(copied, func(i, j int) bool { return compareBytes(copied[i], copied[j]) < 0 })

	return &BytesValues{
		newBase(KindBytesValues, nullAllowed),
		copied,
		append([]byte(nil), lower...), append([]byte(nil), upper...),
	}
}

func (f *BytesValues) Values() [][]byte { return f.values }
func (f *BytesValues) Lower() []byte    { return f.lower }
func (f *BytesValues) Upper() []byte    { return f.upper }

func (f *BytesValues) TestBytes(value []byte) bool {
	i := sort.Search(len(f.values), func(i int) bool {
		return compareBytes(f.values[i], value) >= 0
	})
	return i < len(f.values) && bytes.Equal(f.values[i], value)
}

func (f *BytesValues) TestBytesRange(min, max []byte, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min != nil && max != nil && bytes.Equal(min, max) {
		return f.TestBytes(min)
	}
	if min != nil && compareBytes(min, f.upper) > 0 {
		return false
	}
	if max != nil && compareBytes(max, f.lower) < 0 {
		return false
	}
	return true
}

func (f *BytesValues) Clone(nullAllowed *bool) Filter {
	values := make([][]byte, len(f.values))
	for i, v := range f.values {
		values[i] = append([]byte(nil), v...)
	}
	return &BytesValues{
		f.base.withNullOverride(nullAllowed),
		values,
		append([]byte(nil), f.lower...), append([]byte(nil), f.upper...),
	}
}

func (f *BytesValues) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return f.Clone(boolPtr(false))
	case KindBytesValues:
		o := other.(*BytesValues)
		bothNullAllowed := f.nullAllowed && other.TestNull()
		var kept [][]byte
		for _, v := range f.values {
			if o.TestBytes(v) {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			return nullOrFalse(bothNullAllowed)
		}
		return NewBytesValues(kept, bothNullAllowed)
	case KindBytesRange:
		bothNullAllowed := f.nullAllowed && other.TestNull()
		var kept [][]byte
		for _, v := range f.values {
			if other.TestBytes(v) {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			return nullOrFalse(bothNullAllowed)
		}
		return NewBytesValues(kept, bothNullAllowed)
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}
