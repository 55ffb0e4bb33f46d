package filter

import (
	"bytes"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
)

// BytesRange accepts variable-length byte strings lexicographically
// within [lower, upper], subject to the exclusivity and unbounded
// flags on each end.
type BytesRange struct {
	base
	lower, upper                     []byte
	loExclusive, hiExclusive         bool
	lowerUnbounded, upperUnbounded   bool
	singleValue                      bool
}

func NewBytesRange(lower, upper []byte, loExclusive, hiExclusive, lowerUnbounded, upperUnbounded, nullAllowed bool) *BytesRange {
	if !lowerUnbounded && !upperUnbounded {
		require(compareBytes(lower, upper) <= 0, cerrors.ErrInvalidBytesRange, "BytesRange lower must be <= upper")
	}
	singleValue := !lowerUnbounded && !upperUnbounded && !loExclusive && !hiExclusive && bytes.Equal(lower, upper)
	return &BytesRange{
		newBase(KindBytesRange, nullAllowed),
		append([]byte(nil), lower...), append([]byte(nil), upper...),
		loExclusive, hiExclusive,
		lowerUnbounded, upperUnbounded,
		singleValue,
	}
}

func (f *BytesRange) Lower() []byte { return f.lower }
func (f *BytesRange) Upper() []byte { return f.upper }

func (f *BytesRange) TestBytes(value []byte) bool {
	if f.singleValue {
		return len(value) == len(f.lower) && bytes.Equal(value, f.lower)
	}
	if !f.lowerUnbounded {
		compare := compareBytes(value, f.lower)
		if compare < 0 || (f.loExclusive && compare == 0) {
			return false
		}
	}
	if !f.upperUnbounded {
		compare := compareBytes(value, f.upper)
		return compare < 0 || (!f.hiExclusive && compare == 0)
	}
	return true
}

func (f *BytesRange) TestBytesRange(min, max []byte, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min != nil && max != nil && bytes.Equal(min, max) {
		return f.TestBytes(min)
	}
	if !f.upperUnbounded && min != nil && compareBytes(min, f.upper) > 0 {
		return false
	}
	if !f.lowerUnbounded && max != nil && compareBytes(max, f.lower) < 0 {
		return false
	}
	return true
}

func (f *BytesRange) Clone(nullAllowed *bool) Filter {
	return &BytesRange{
		f.base.withNullOverride(nullAllowed),
		append([]byte(nil), f.lower...), append([]byte(nil), f.upper...),
		f.loExclusive, f.hiExclusive,
		f.lowerUnbounded, f.upperUnbounded,
		f.singleValue,
	}
}

func (f *BytesRange) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return f.Clone(boolPtr(false))
	case KindBytesRange:
		o := other.(*BytesRange)
		bothNullAllowed := f.nullAllowed && other.TestNull()

		lowerUnbounded := f.lowerUnbounded && o.lowerUnbounded
		var lower []byte
		loExclusive := false
		if !lowerUnbounded {
			lower, loExclusive = tighterLower(f.lowerUnbounded, f.lower, f.loExclusive, o.lowerUnbounded, o.lower, o.loExclusive)
		}
		upperUnbounded := f.upperUnbounded && o.upperUnbounded
		var upper []byte
		hiExclusive := false
		if !upperUnbounded {
			upper, hiExclusive = tighterUpper(f.upperUnbounded, f.upper, f.hiExclusive, o.upperUnbounded, o.upper, o.hiExclusive)
		}

		if !lowerUnbounded && !upperUnbounded {
			cmp := compareBytes(lower, upper)
			if cmp > 0 || (cmp == 0 && (loExclusive || hiExclusive)) {
				return nullOrFalse(bothNullAllowed)
			}
		}
		return NewBytesRange(lower, upper, loExclusive, hiExclusive, lowerUnbounded, upperUnbounded, bothNullAllowed)
	case KindBytesValues:
		return other.MergeWith(f)
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}

// tighterLower picks the larger (more restrictive) of two lower
// bounds; an unbounded side always loses to a bounded one, and equal
// values prefer exclusivity.
func tighterLower(aUnbounded bool, aVal []byte, aExcl bool, bUnbounded bool, bVal []byte, bExcl bool) ([]byte, bool) {
	if aUnbounded {
		return bVal, bExcl
	}
	if bUnbounded {
		return aVal, aExcl
	}
	switch c := compareBytes(aVal, bVal); {
	case c > 0:
		return aVal, aExcl
	case c < 0:
		return bVal, bExcl
	default:
		return aVal, aExcl || bExcl
	}
}

// tighterUpper picks the smaller (more restrictive) of two upper
// bounds, with the same unbounded/exclusivity tie-breaking as
// tighterLower.
func tighterUpper(aUnbounded bool, aVal []byte, aExcl bool, bUnbounded bool, bVal []byte, bExcl bool) ([]byte, bool) {
	if aUnbounded {
		return bVal, bExcl
	}
	if bUnbounded {
		return aVal, aExcl
	}
	switch c := compareBytes(aVal, bVal); {
	case c < 0:
		return aVal, aExcl
	case c > 0:
		return bVal, bExcl
	default:
		return aVal, aExcl || bExcl
	}
}
