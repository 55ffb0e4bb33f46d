package filter

import (
	"math"
	"math/bits"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// kEmptyMarker is the sentinel value marking an unoccupied slot. It is
// an otherwise-valid int64, so containsEmptyMarker tracks separately
// whether the real value kEmptyMarker was actually inserted.
const kEmptyMarker = int64(math.MinInt64)

// hashMultiplier is an arbitrary odd 64-bit constant with good
// avalanche behavior; its exact value is not observable from outside
// this package, per spec §9.
const hashMultiplier = uint64(0x9E3779B97F4A7C15)

// BigintValuesUsingHashTable is the sparse integer value-set
// representation: an open-address table with linear probing sized to
// at least 3x the value count, rounded up to a power of two.
type BigintValuesUsingHashTable struct {
	base
	min, max            int64
	table               []int64
	containsEmptyMarker bool
}

func NewBigintValuesUsingHashTable(min, max int64, values []int64, nullAllowed bool) *BigintValuesUsingHashTable {
	require(min < max, cerrors.ErrInvalidRange, "BigintValuesUsingHashTable min=%d must be < max=%d", min, max)
	require(len(values) > 1, cerrors.ErrTooFewValues, "BigintValuesUsingHashTable requires at least 2 values, got %d", len(values))

	size := nextPow2(uint64(len(values)) * 3)
	table := make([]int64, size)
	for i := range table {
		table[i] = kEmptyMarker
	}

	f := &BigintValuesUsingHashTable{newBase(KindBigintValuesUsingHashTable, nullAllowed), min, max, table, false}
	for _, v := range values {
		if v == kEmptyMarker {
			f.containsEmptyMarker = true
			continue
		}
		f.insert(v)
	}
	return f
}

func (f *BigintValuesUsingHashTable) insert(v int64) {
	size := uint64(len(f.table))
	pos := hashPosition(v, size)
	for i := uint64(0); i < size; i++ {
		idx := (pos + i) & (size - 1)
		if f.table[idx] == kEmptyMarker {
			f.table[idx] = v
			return
		}
	}
}

func hashPosition(v int64, size uint64) uint64 {
	return (uint64(v) * hashMultiplier) & (size - 1)
}

// nextPow2 returns the smallest power of two that is >= n, and at
// least 1. This is a true ceiling, unlike the floor-of-log2 the
// original source computes; see SPEC_FULL.md §4.
func nextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(1) << bits.Len64(n-1)
}

func (f *BigintValuesUsingHashTable) Min() int64 { return f.min }
func (f *BigintValuesUsingHashTable) Max() int64 { return f.max }

func (f *BigintValuesUsingHashTable) TestInt64(v int64) bool {
	if f.containsEmptyMarker && v == kEmptyMarker {
		return true
	}
	if v < f.min || v > f.max {
		return false
	}
	size := uint64(len(f.table))
	pos := hashPosition(v, size)
	for i := uint64(0); i < size; i++ {
		idx := (pos + i) & (size - 1)
		stored := f.table[idx]
		if stored == kEmptyMarker {
			return false
		}
		if stored == v {
			return true
		}
	}
	return false
}

func (f *BigintValuesUsingHashTable) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestInt64(min)
	}
	return !(min > f.max || max < f.min)
}

func (f *BigintValuesUsingHashTable) Clone(nullAllowed *bool) Filter {
	return &BigintValuesUsingHashTable{
		f.base.withNullOverride(nullAllowed),
		f.min, f.max,
		append([]int64(nil), f.table...),
		f.containsEmptyMarker,
	}
}

func (f *BigintValuesUsingHashTable) MergeWith(other Filter) Filter {
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
		return other.MergeWith(f)
	case KindBigintMultiRange:
		o := other.(*BigintMultiRange)
		var valuesToKeep []int64
		if f.containsEmptyMarker && other.TestInt64(kEmptyMarker) {
			valuesToKeep = append(valuesToKeep, kEmptyMarker)
		}
		for _, r := range o.ranges {
			min := maxInt64(f.min, r.lower)
			max := minInt64(f.max, r.upper)
			if min > max {
				continue
			}
			for _, v := range f.table {
				if v != kEmptyMarker && r.TestInt64(v) {
					valuesToKeep = append(valuesToKeep, v)
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

// mergeWithRange intersects this hash set against other over
// [min,max], walking this set's occupied slots (not the numeric
// range, which may be far larger than the set itself) and keeping
// values other also accepts.
func (f *BigintValuesUsingHashTable) mergeWithRange(min, max int64, other Filter) Filter {
	bothNullAllowed := f.nullAllowed && other.TestNull()
	if max < min {
		return nullOrFalse(bothNullAllowed)
	}
	if max == min {
		if f.TestInt64(min) && other.TestInt64(min) {
			return NewBigintRange(min, min, bothNullAllowed)
		}
		return nullOrFalse(bothNullAllowed)
	}

	var valuesToKeep []int64
	if f.containsEmptyMarker && other.TestInt64(kEmptyMarker) {
		valuesToKeep = append(valuesToKeep, kEmptyMarker)
	}
	for _, v := range f.table {
		if v != kEmptyMarker && other.TestInt64(v) {
			valuesToKeep = append(valuesToKeep, v)
		}
	}
	return CreateBigintValues(valuesToKeep, bothNullAllowed)
}
