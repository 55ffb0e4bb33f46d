package filter

import (
	"math"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// DoubleRange accepts float64 values within (lower, upper), with each
// end independently open or closed and independently unbounded, plus
// a NaN policy orthogonal to the bounds.
type DoubleRange struct {
	base
	lower, upper                   float64
	loExclusive, hiExclusive       bool
	lowerUnbounded, upperUnbounded bool
	nanAllowed                     bool
}

func NewDoubleRange(lower, upper float64, loExclusive, hiExclusive, lowerUnbounded, upperUnbounded, nanAllowed, nullAllowed bool) *DoubleRange {
	if !lowerUnbounded && !upperUnbounded {
		require(lower <= upper, cerrors.ErrInvalidRange, "DoubleRange lower=%v must be <= upper=%v", lower, upper)
	}
	return &DoubleRange{
		newBase(KindDoubleRange, nullAllowed),
		lower, upper,
		loExclusive, hiExclusive,
		lowerUnbounded, upperUnbounded,
		nanAllowed,
	}
}

func (f *DoubleRange) Lower() float64 { return f.lower }
func (f *DoubleRange) Upper() float64 { return f.upper }

func (f *DoubleRange) TestDouble(value float64) bool {
	if math.IsNaN(value) {
		return f.nanAllowed
	}
	if !f.lowerUnbounded {
		if value < f.lower || (f.loExclusive && value == f.lower) {
			return false
		}
	}
	if !f.upperUnbounded {
		if value > f.upper || (f.hiExclusive && value == f.upper) {
			return false
		}
	}
	return true
}

func (f *DoubleRange) TestDoubleRange(min, max float64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestDouble(min)
	}
	if !f.lowerUnbounded && max < f.lower {
		return false
	}
	if !f.upperUnbounded && min > f.upper {
		return false
	}
	return true
}

func (f *DoubleRange) Clone(nullAllowed *bool) Filter {
	return &DoubleRange{
		f.base.withNullOverride(nullAllowed),
		f.lower, f.upper,
		f.loExclusive, f.hiExclusive,
		f.lowerUnbounded, f.upperUnbounded,
		f.nanAllowed,
	}
}

func (f *DoubleRange) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return f.Clone(boolPtr(false))
	case KindDoubleRange:
		o := other.(*DoubleRange)
		bothNullAllowed := f.nullAllowed && other.TestNull()
		bothNanAllowed := f.nanAllowed && o.nanAllowed

		lowerUnbounded := f.lowerUnbounded && o.lowerUnbounded
		lower, loExclusive := tighterFloatLower(f.lowerUnbounded, f.lower, f.loExclusive, o.lowerUnbounded, o.lower, o.loExclusive)
		upperUnbounded := f.upperUnbounded && o.upperUnbounded
		upper, hiExclusive := tighterFloatUpper(f.upperUnbounded, f.upper, f.hiExclusive, o.upperUnbounded, o.upper, o.hiExclusive)

		if !lowerUnbounded && !upperUnbounded {
			if lower > upper || (lower == upper && (loExclusive || hiExclusive)) {
				return nullOrFalse(bothNullAllowed)
			}
		}
		return NewDoubleRange(lower, upper, loExclusive, hiExclusive, lowerUnbounded, upperUnbounded, bothNanAllowed, bothNullAllowed)
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}

func tighterFloatLower(aUnbounded bool, aVal float64, aExcl bool, bUnbounded bool, bVal float64, bExcl bool) (float64, bool) {
	if aUnbounded {
		return bVal, bExcl
	}
	if bUnbounded {
		return aVal, aExcl
	}
	if aVal > bVal {
		return aVal, aExcl
	}
	if bVal > aVal {
		return bVal, bExcl
	}
	return aVal, aExcl || bExcl
}

func tighterFloatUpper(aUnbounded bool, aVal float64, aExcl bool, bUnbounded bool, bVal float64, bExcl bool) (float64, bool) {
	if aUnbounded {
		return bVal, bExcl
	}
	if bUnbounded {
		return aVal, aExcl
	}
	if aVal < bVal {
		return aVal, aExcl
	}
	if bVal < aVal {
		return bVal, bExcl
	}
	return aVal, aExcl || bExcl
}
