package filter

import (
	"sort"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// BigintMultiRange is a disjoint-range container: an ordered list of
// non-overlapping BigintRange children, sorted by lower bound, probed
// by binary search on the lower bounds. This is the "Disjoint range
// container" component of the spec, specialised for int64.
type BigintMultiRange struct {
	base
	ranges       []*BigintRange
	lowerBounds  []int64
}

func NewBigintMultiRange(ranges []*BigintRange, nullAllowed bool) *BigintMultiRange {
	require(len(ranges) >= 2, cerrors.ErrTooFewValues, "BigintMultiRange requires at least 2 ranges, got %d", len(ranges))

	lowerBounds := make([]int64, len(ranges))
	for i, r := range ranges {
		lowerBounds[i] = r.lower
	}
	for i := 1; i < len(lowerBounds); i++ {
		require(lowerBounds[i] >= ranges[i-1].upper, cerrors.ErrOverlappingRanges,
			"bigint ranges must not overlap: range[%d].lower=%d < range[%d].upper=%d", i, lowerBounds[i], i-1, ranges[i-1].upper)
	}

	return &BigintMultiRange{newBase(KindBigintMultiRange, nullAllowed), ranges, lowerBounds}
}

func (f *BigintMultiRange) Ranges() []*BigintRange { return f.ranges }

// binarySearch mirrors std::lower_bound: it returns the index of an
// exact hit if one exists, or the negative-encoded insertion position
// (-(insertionIndex)-1) otherwise, matching the source's encoding.
func (f *BigintMultiRange) binarySearch(value int64) int {
	idx := sort.Search(len(f.lowerBounds), func(i int) bool {
		return f.lowerBounds[i] >= value
	})
	if idx < len(f.lowerBounds) && f.lowerBounds[idx] == value {
		return idx
	}
	return -idx - 1
}

func (f *BigintMultiRange) TestInt64(value int64) bool {
	i := f.binarySearch(value)
	if i >= 0 {
		return true
	}
	place := (-i) - 1
	if place == 0 {
		return false
	}
	return f.ranges[place-1].TestInt64(value)
}

func (f *BigintMultiRange) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	for _, r := range f.ranges {
		if r.TestInt64Range(min, max, hasNull) {
			return true
		}
	}
	return false
}

func (f *BigintMultiRange) Clone(nullAllowed *bool) Filter {
	ranges := make([]*BigintRange, len(f.ranges))
	for i, r := range f.ranges {
		ranges[i] = r.Clone(nil).(*BigintRange)
	}
	return &BigintMultiRange{f.base.withNullOverride(nullAllowed), ranges, append([]int64(nil), f.lowerBounds...)}
}

func (f *BigintMultiRange) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		ranges := make([]*BigintRange, len(f.ranges))
		for i, r := range f.ranges {
			ranges[i] = r.Clone(nil).(*BigintRange)
		}
		return NewBigintMultiRange(ranges, false)
	case KindBigintRange, KindBigintValuesUsingBitmask, KindBigintValuesUsingHashTable:
		return other.MergeWith(f)
	case KindBigintMultiRange:
		newRanges := make([]*BigintRange, 0, len(f.ranges))
		for _, r := range f.ranges {
			merged := r.MergeWith(other)
			switch merged.Kind() {
			case KindBigintRange:
				newRanges = append(newRanges, merged.(*BigintRange))
			case KindBigintMultiRange:
				for _, nr := range merged.(*BigintMultiRange).ranges {
					newRanges = append(newRanges, nr.Clone(nil).(*BigintRange))
				}
			case KindAlwaysFalse, KindIsNull:
				// contributes nothing
			default:
				panicUnsupportedPair(f, other)
			}
		}
		bothNullAllowed := f.nullAllowed && other.TestNull()
		return combineBigintRanges(newRanges, bothNullAllowed)
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}
