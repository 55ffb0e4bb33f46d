package filter

import (
	"math"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// MultiRange is a disjunction of heterogeneous filters on the same
// column, e.g. a column's `IN (...)` lowered to a mix of FloatRange
// and BytesRange children: a value is accepted if any child accepts
// it. NaN is governed by its own flag, independent of any child's NaN
// policy.
type MultiRange struct {
	base
	filters    []Filter
	nanAllowed bool
}

func NewMultiRange(filters []Filter, nullAllowed, nanAllowed bool) *MultiRange {
	require(len(filters) > 0, cerrors.ErrTooFewValues, "MultiRange requires at least 1 child filter, got %d", len(filters))
	return &MultiRange{newBase(KindMultiRange, nullAllowed), append([]Filter(nil), filters...), nanAllowed}
}

func (f *MultiRange) Filters() []Filter { return f.filters }

func (f *MultiRange) TestDouble(value float64) bool {
	if math.IsNaN(value) {
		return f.nanAllowed
	}
	for _, child := range f.filters {
		if child.TestDouble(value) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestFloat(value float32) bool {
	if math.IsNaN(float64(value)) {
		return f.nanAllowed
	}
	for _, child := range f.filters {
		if child.TestFloat(value) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestBytes(value []byte) bool {
	for _, child := range f.filters {
		if child.TestBytes(value) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestLength(n int32) bool {
	for _, child := range f.filters {
		if child.TestLength(n) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestBytesRange(min, max []byte, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	for _, child := range f.filters {
		if child.TestBytesRange(min, max, hasNull) {
			return true
		}
	}
	return false
}

func (f *MultiRange) Clone(nullAllowed *bool) Filter {
	filters := make([]Filter, len(f.filters))
	for i, child := range f.filters {
		filters[i] = child.Clone(nil)
	}
	return &MultiRange{f.base.withNullOverride(nullAllowed), filters, f.nanAllowed}
}

// MergeWith handles IsNull/IsNotNull/AlwaysTrue/AlwaysFalse uniformly
// and implements the Cartesian child-pairwise merge against another
// MultiRange. Pairings against DoubleRange, FloatRange, BytesRange,
// and BytesValues are unreachable in the source this is grounded on
// and panic here too, per spec §9.
func (f *MultiRange) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return f.Clone(boolPtr(false))
	case KindDoubleRange, KindFloatRange, KindBytesRange, KindBytesValues:
		panicUnsupportedPair(f, other)
	case KindMultiRange:
		o := other.(*MultiRange)
		bothNullAllowed := f.nullAllowed && other.TestNull()
		bothNanAllowed := f.nanAllowed && o.nanAllowed

		var merged []Filter
		for _, a := range f.filters {
			for _, b := range o.filters {
				innerMerged := a.MergeWith(b)
				switch innerMerged.Kind() {
				case KindAlwaysFalse, KindIsNull:
					continue
				default:
					merged = append(merged, innerMerged)
				}
			}
		}

		switch len(merged) {
		case 0:
			return nullOrFalse(bothNullAllowed)
		case 1:
			return merged[0].Clone(&bothNullAllowed)
		default:
			return NewMultiRange(merged, bothNullAllowed, bothNanAllowed)
		}
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}
