package filter

import cerrors "github.com/milvus-io/milvus-filter/go/common/errors"

// BigintRange accepts int64 values in the closed interval [lower, upper].
type BigintRange struct {
	base
	lower, upper int64
}

func NewBigintRange(lower, upper int64, nullAllowed bool) *BigintRange {
	require(lower <= upper, cerrors.ErrInvalidRange, "BigintRange lower=%d must be <= upper=%d", lower, upper)
	return &BigintRange{newBase(KindBigintRange, nullAllowed), lower, upper}
}

func (f *BigintRange) Lower() int64 { return f.lower }
func (f *BigintRange) Upper() int64 { return f.upper }

func (f *BigintRange) TestInt64(v int64) bool {
	return f.lower <= v && v <= f.upper
}

func (f *BigintRange) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestInt64(min)
	}
	return !(min > f.upper || max < f.lower)
}

func (f *BigintRange) Clone(nullAllowed *bool) Filter {
	return &BigintRange{f.base.withNullOverride(nullAllowed), f.lower, f.upper}
}

func (f *BigintRange) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return NewBigintRange(f.lower, f.upper, false)
	case KindBigintRange:
		o := other.(*BigintRange)
		bothNullAllowed := f.nullAllowed && other.TestNull()
		lower := maxInt64(f.lower, o.lower)
		upper := minInt64(f.upper, o.upper)
		if lower <= upper {
			return NewBigintRange(lower, upper, bothNullAllowed)
		}
		return nullOrFalse(bothNullAllowed)
	case KindBigintValuesUsingBitmask, KindBigintValuesUsingHashTable:
		return other.MergeWith(f)
	case KindBigintMultiRange:
		o := other.(*BigintMultiRange)
		newRanges := make([]*BigintRange, 0, len(o.ranges))
		for _, r := range o.ranges {
			merged := f.MergeWith(r)
			if merged.Kind() == KindBigintRange {
				newRanges = append(newRanges, merged.(*BigintRange))
			} else if merged.Kind() != KindAlwaysFalse && merged.Kind() != KindIsNull {
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

// combineBigintRanges normalises a slice of surviving BigintRange
// children into the most compact equivalent filter, per spec §4.4's
// normalisation requirement: zero children collapses to null-or-false,
// one child to a bare BigintRange, two or more to a BigintMultiRange.
func combineBigintRanges(ranges []*BigintRange, nullAllowed bool) Filter {
	switch len(ranges) {
	case 0:
		return nullOrFalse(nullAllowed)
	case 1:
		return NewBigintRange(ranges[0].lower, ranges[0].upper, nullAllowed)
	default:
		return NewBigintMultiRange(ranges, nullAllowed)
	}
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
