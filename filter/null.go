package filter

import cerrors "github.com/milvus-io/milvus-filter/go/common/errors"

// AlwaysTrue accepts every value, including null.
type AlwaysTrue struct{ base }

func NewAlwaysTrue() *AlwaysTrue {
	return &AlwaysTrue{newBase(KindAlwaysTrue, true)}
}

func (f *AlwaysTrue) TestInt64(int64) bool  { return true }
func (f *AlwaysTrue) TestDouble(float64) bool { return true }
func (f *AlwaysTrue) TestFloat(float32) bool  { return true }
func (f *AlwaysTrue) TestBool(bool) bool      { return true }
func (f *AlwaysTrue) TestBytes([]byte) bool   { return true }
func (f *AlwaysTrue) TestLength(int32) bool   { return true }

func (f *AlwaysTrue) TestInt64Range(int64, int64, bool) bool      { return true }
func (f *AlwaysTrue) TestDoubleRange(float64, float64, bool) bool { return true }
func (f *AlwaysTrue) TestFloatRange(float32, float32, bool) bool  { return true }
func (f *AlwaysTrue) TestBytesRange([]byte, []byte, bool) bool    { return true }

func (f *AlwaysTrue) Clone(nullAllowed *bool) Filter {
	return &AlwaysTrue{f.base.withNullOverride(nullAllowed)}
}

func (f *AlwaysTrue) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	require(other.IsDeterministic(), cerrors.ErrNondeterministicPair, "mergeWith operand kind=%s", other.Kind())
	merged := f.nullAllowed && other.TestNull()
	return other.Clone(&merged)
}

// AlwaysFalse rejects every value, including null.
type AlwaysFalse struct{ base }

func NewAlwaysFalse() *AlwaysFalse {
	return &AlwaysFalse{newBase(KindAlwaysFalse, false)}
}

func (f *AlwaysFalse) Clone(nullAllowed *bool) Filter {
	return NewAlwaysFalse()
}

func (f *AlwaysFalse) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	require(other.IsDeterministic(), cerrors.ErrNondeterministicPair, "mergeWith operand kind=%s", other.Kind())
	return NewAlwaysFalse()
}

// IsNull accepts only null.
type IsNull struct{ base }

func NewIsNull() *IsNull {
	return &IsNull{newBase(KindIsNull, true)}
}

func (f *IsNull) Clone(nullAllowed *bool) Filter {
	return &IsNull{f.base.withNullOverride(nullAllowed)}
}

func (f *IsNull) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	require(other.IsDeterministic(), cerrors.ErrNondeterministicPair, "mergeWith operand kind=%s", other.Kind())
	if other.TestNull() {
		return f.Clone(nil)
	}
	return NewAlwaysFalse()
}

// IsNotNull accepts any non-null value.
type IsNotNull struct{ base }

func NewIsNotNull() *IsNotNull {
	return &IsNotNull{newBase(KindIsNotNull, false)}
}

func (f *IsNotNull) TestInt64(int64) bool     { return true }
func (f *IsNotNull) TestDouble(float64) bool  { return true }
func (f *IsNotNull) TestFloat(float32) bool   { return true }
func (f *IsNotNull) TestBool(bool) bool       { return true }
func (f *IsNotNull) TestBytes([]byte) bool    { return true }
func (f *IsNotNull) TestLength(int32) bool    { return true }

func (f *IsNotNull) TestInt64Range(int64, int64, bool) bool      { return true }
func (f *IsNotNull) TestDoubleRange(float64, float64, bool) bool { return true }
func (f *IsNotNull) TestFloatRange(float32, float32, bool) bool  { return true }
func (f *IsNotNull) TestBytesRange([]byte, []byte, bool) bool    { return true }

func (f *IsNotNull) Clone(nullAllowed *bool) Filter {
	return &IsNotNull{f.base.withNullOverride(nullAllowed)}
}

func (f *IsNotNull) MergeWith(other Filter) Filter {
	recordMerge(f, other)
	switch other.Kind() {
	case KindAlwaysTrue, KindIsNotNull:
		return f.Clone(nil)
	case KindAlwaysFalse, KindIsNull:
		return NewAlwaysFalse()
	default:
		notNull := false
		return other.Clone(&notNull)
	}
}
