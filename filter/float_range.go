package filter

import (
	"math"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// FloatRange is the float32 counterpart of DoubleRange.
type FloatRange struct {
	base
	lower, upper                   float32
	loExclusive, hiExclusive       bool
	lowerUnbounded, upperUnbounded bool
	nanAllowed                     bool
}

func NewFloatRange(lower, upper float32, loExclusive, hiExclusive, lowerUnbounded, upperUnbounded, nanAllowed, nullAllowed bool) *FloatRange {
	if !lowerUnbounded && !upperUnbounded {
		require(lower <= upper, cerrors.ErrInvalidRange, "FloatRange lower=%v must be <= upper=%v", lower, upper)
	}
	return &FloatRange{
		newBase(KindFloatRange, nullAllowed),
		lower, upper,
		loExclusive, hiExclusive,
		lowerUnbounded, upperUnbounded,
		nanAllowed,
	}
}

func (f *FloatRange) Lower() float32 { return f.lower }
func (f *FloatRange) Upper() float32 { return f.upper }

func (f *FloatRange) TestFloat(value float32) bool {
	if math.IsNaN(float64(value)) {
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

func (f *FloatRange) TestFloatRange(min, max float32, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestFloat(min)
	}
	if !f.lowerUnbounded && max < f.lower {
		return false
	}
	if !f.upperUnbounded && min > f.upper {
		return false
	}
	return true
}

func (f *FloatRange) Clone(nullAllowed *bool) Filter {
	return &FloatRange{
		f.base.withNullOverride(nullAllowed),
		f.lower, f.upper,
		f.loExclusive, f.hiExclusive,
		f.lowerUnbounded, f.upperUnbounded,
		f.nanAllowed,
	}
}

func (f *FloatRange) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return f.Clone(boolPtr(false))
	case KindFloatRange:
		o := other.(*FloatRange)
		bothNullAllowed := f.nullAllowed && other.TestNull()
		bothNanAllowed := f.nanAllowed && o.nanAllowed

		lowerUnbounded := f.lowerUnbounded && o.lowerUnbounded
		lower, loExclusive := tighterFloat32Lower(f.lowerUnbounded, f.lower, f.loExclusive, o.lowerUnbounded, o.lower, o.loExclusive)
		upperUnbounded := f.upperUnbounded && o.upperUnbounded
		upper, hiExclusive := tighterFloat32Upper(f.upperUnbounded, f.upper, f.hiExclusive, o.upperUnbounded, o.upper, o.hiExclusive)

		if !lowerUnbounded && !upperUnbounded {
			if lower > upper || (lower == upper && (loExclusive || hiExclusive)) {
				return nullOrFalse(bothNullAllowed)
			}
		}
		return NewFloatRange(lower, upper, loExclusive, hiExclusive, lowerUnbounded, upperUnbounded, bothNanAllowed, bothNullAllowed)
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}

func tighterFloat32Lower(aUnbounded bool, aVal float32, aExcl bool, bUnbounded bool, bVal float32, bExcl bool) (float32, bool) {
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

func tighterFloat32Upper(aUnbounded bool, aVal float32, aExcl bool, bUnbounded bool, bVal float32, bExcl bool) (float32, bool) {
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
