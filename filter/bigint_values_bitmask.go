package filter

import (
	"github.com/bits-and-blooms/bitset"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// BigintValuesUsingBitmask is the dense integer value-set
// representation: one bit per integer in [min, max].
type BigintValuesUsingBitmask struct {
	base
	min, max int64
	bits     *bitset.BitSet
}

func NewBigintValuesUsingBitmask(min, max int64, values []int64, nullAllowed bool) *BigintValuesUsingBitmask {
	require(min < max, cerrors.ErrInvalidRange, "BigintValuesUsingBitmask min=%d must be < max=%d", min, max)
	require(len(values) > 1, cerrors.ErrTooFewValues, "BigintValuesUsingBitmask requires at least 2 values, got %d", len(values))

	bits := bitset.New(uint(max - min + 1))
	for _, v := range values {
		bits.Set(uint(v - min))
	}
	return &BigintValuesUsingBitmask{newBase(KindBigintValuesUsingBitmask, nullAllowed), min, max, bits}
}

func (f *BigintValuesUsingBitmask) Min() int64 { return f.min }
func (f *BigintValuesUsingBitmask) Max() int64 { return f.max }

func (f *BigintValuesUsingBitmask) TestInt64(v int64) bool {
	if v < f.min || v > f.max {
		return false
	}
	return f.bits.Test(uint(v - f.min))
}

func (f *BigintValuesUsingBitmask) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestInt64(min)
	}
	return !(min > f.max || max < f.min)
}

func (f *BigintValuesUsingBitmask) Clone(nullAllowed *bool) Filter {
	return &BigintValuesUsingBitmask{f.base.withNullOverride(nullAllowed), f.min, f.max, f.bits.Clone()}
}

func (f *BigintValuesUsingBitmask) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return f.Clone(boolPtr(false))
	case KindBigintRange:
		o := other.(*BigintRange)
		min := maxInt64(f.min, o.lower)
		max := minInt64(f.max, o.upper)
		return f.mergeWithRange(min, max, other)
	case KindBigintValuesUsingHashTable:
		o := other.(*BigintValuesUsingHashTable)
		min := maxInt64(f.min, o.min)
		max := minInt64(f.max, o.max)
		return f.mergeWithRange(min, max, other)
	case KindBigintValuesUsingBitmask:
		o := other.(*BigintValuesUsingBitmask)
		min := maxInt64(f.min, o.min)
		max := minInt64(f.max, o.max)
		return f.mergeWithRange(min, max, other)
	case KindBigintMultiRange:
		o := other.(*BigintMultiRange)
		var valuesToKeep []int64
		for _, r := range o.ranges {
			min := maxInt64(f.min, r.lower)
			max := minInt64(f.max, r.upper)
			for i := min; i <= max; i++ {
				if f.bits.Test(uint(i-f.min)) && r.TestInt64(i) {
					valuesToKeep = append(valuesToKeep, i)
				}
			}
		}
		bothNullAllowed := f.nullAllowed && other.TestNull()
		return CreateBigintValues(valuesToKeep, bothNullAllowed)
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}

// mergeWithRange intersects this bitmask against other over [min,max]
// (already narrowed to both operands' extents), keeping only the
// values both accept, and feeds survivors back through the factory
// so the result is auto-recompacted per spec §4.4.
func (f *BigintValuesUsingBitmask) mergeWithRange(min, max int64, other Filter) Filter {
	bothNullAllowed := f.nullAllowed && other.TestNull()
	if max < min {
		return nullOrFalse(bothNullAllowed)
	}
	var valuesToKeep []int64
	for i := min; i <= max; i++ {
		if f.bits.Test(uint(i-f.min)) && other.TestInt64(i) {
			valuesToKeep = append(valuesToKeep, i)
		}
	}
	return CreateBigintValues(valuesToKeep, bothNullAllowed)
}

func boolPtr(v bool) *bool { return &v }
