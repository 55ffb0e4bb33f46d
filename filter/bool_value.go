package filter

// BoolValue accepts a single boolean value.
type BoolValue struct {
	base
	value bool
}

func NewBoolValue(value, nullAllowed bool) *BoolValue {
	return &BoolValue{newBase(KindBoolValue, nullAllowed), value}
}

func (f *BoolValue) Value() bool { return f.value }

func (f *BoolValue) TestBool(v bool) bool { return v == f.value }

func (f *BoolValue) TestInt64Range(_, _ int64, hasNull bool) bool {
	return hasNull && f.nullAllowed
}

func (f *BoolValue) Clone(nullAllowed *bool) Filter {
	return &BoolValue{f.base.withNullOverride(nullAllowed), f.value}
}

func (f *BoolValue) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindAlwaysFalse, KindIsNull:
		return other.MergeWith(f)
	case KindIsNotNull:
		return NewBoolValue(f.value, false)
	case KindBoolValue:
		ob := other.(*BoolValue)
		bothNullAllowed := f.nullAllowed && other.TestNull()
		if ob.value == f.value {
			return NewBoolValue(f.value, bothNullAllowed)
		}
		return nullOrFalse(bothNullAllowed)
	default:
		panicUnsupportedPair(f, other)
	}
	panic("unreachable")
}
