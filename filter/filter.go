// Package filter implements the closed family of scalar-column
// predicates used by a columnar scan/pushdown layer to decide, per
// value or per page, whether a row survives a WHERE-clause predicate
// pushed down to the column it targets.
//
// Every filter is immutable once constructed. Combinators (Clone,
// MergeWith) always return a new filter; there is no shared mutable
// state, so a constructed filter is safe to read concurrently from
// any number of goroutines without synchronization.
package filter

import (
	"fmt"

	cerrors "github.com/milvus-io/milvus-filter/go/common/errors"
	"github.com/milvus-io/milvus-filter/go/common/log"
	"github.com/milvus-io/milvus-filter/go/filtermetrics"
	"go.uber.org/zap"
)

// Filter is the common contract every variant in the closed taxonomy
// implements. Typed Test* probes that do not apply to a variant's
// value domain return false, per the embedded base's defaults.
type Filter interface {
	fmt.Stringer

	Kind() Kind
	IsDeterministic() bool
	TestNull() bool

	TestInt64(v int64) bool
	TestDouble(v float64) bool
	TestFloat(v float32) bool
	TestBool(v bool) bool
	TestBytes(v []byte) bool
	TestLength(n int32) bool

	TestInt64Range(min, max int64, hasNull bool) bool
	TestDoubleRange(min, max float64, hasNull bool) bool
	TestFloatRange(min, max float32, hasNull bool) bool
	// TestBytesRange answers a page-prune query given a page's min/max
	// byte-string summary. A nil min or max means that bound is
	// unavailable for the page (not that the page contains an empty
	// string), mirroring the source's std::optional<string_view>.
	TestBytesRange(min, max []byte, hasNull bool) bool

	// Clone returns a deep copy. If nullAllowed is non-nil, the copy's
	// null bit is replaced with *nullAllowed instead of being copied.
	Clone(nullAllowed *bool) Filter

	// MergeWith returns a new filter equivalent to this AND other,
	// over both the value domain and the null domain. Panics if the
	// pair is not one of the supported combinations, or if other is
	// not deterministic.
	MergeWith(other Filter) Filter
}

// base carries the three properties every variant shares: kind,
// determinism, and null policy. Embedding it gives every concrete
// variant the spec-mandated "return false" default for any typed
// probe it does not otherwise override.
type base struct {
	kind          Kind
	deterministic bool
	nullAllowed   bool
}

func newBase(kind Kind, nullAllowed bool) base {
	filtermetrics.FiltersConstructed.WithLabelValues(kind.String()).Inc()
	return base{kind: kind, deterministic: true, nullAllowed: nullAllowed}
}

// withNullOverride returns a copy of b with nullAllowed replaced by
// *override when override is non-nil. Every variant's Clone uses this
// to implement the optional null-bit override uniformly.
func (b base) withNullOverride(override *bool) base {
	nb := b
	if override != nil {
		nb.nullAllowed = *override
	}
	return nb
}

func (b *base) Kind() Kind            { return b.kind }
func (b *base) IsDeterministic() bool { return b.deterministic }
func (b *base) TestNull() bool        { return b.nullAllowed }

func (b *base) TestInt64(int64) bool    { return false }
func (b *base) TestDouble(float64) bool { return false }
func (b *base) TestFloat(float32) bool  { return false }
func (b *base) TestBool(bool) bool      { return false }
func (b *base) TestBytes([]byte) bool   { return false }
func (b *base) TestLength(int32) bool   { return false }

func (b *base) TestInt64Range(_, _ int64, hasNull bool) bool {
	return hasNull && b.nullAllowed
}

func (b *base) TestDoubleRange(_, _ float64, hasNull bool) bool {
	return hasNull && b.nullAllowed
}

func (b *base) TestFloatRange(_, _ float32, hasNull bool) bool {
	return hasNull && b.nullAllowed
}

func (b *base) TestBytesRange(_, _ []byte, hasNull bool) bool {
	return hasNull && b.nullAllowed
}

func (b *base) String() string {
	det := "deterministic"
	if !b.deterministic {
		det = "nondeterministic"
	}
	null := "null not allowed"
	if b.nullAllowed {
		null = "null allowed"
	}
	return fmt.Sprintf("Filter(%s, %s, %s)", b.kind, det, null)
}

// require panics with a logged, wrapped sentinel error when cond is
// false. It is the library's only precondition-checking primitive,
// used exclusively at construction time and at merge dispatch time;
// every other operation in this package is total.
func require(cond bool, sentinel error, format string, args ...interface{}) {
	if cond {
		return
	}
	err := cerrors.Wrapf(sentinel, format, args...)
	log.Error("filter precondition violated", zap.Error(err))
	panic(err)
}

// recordMerge increments the mergeWith operand-pair counter. Every
// exported MergeWith implementation calls this first, giving scan
// engines visibility into which predicate combinations pushdown
// actually produces.
func recordMerge(a, b Filter) {
	filtermetrics.MergesPerformed.WithLabelValues(a.Kind().String(), b.Kind().String()).Inc()
}

// panicUnsupportedPair reports a mergeWith table hole: a pair of
// kinds that this package does not implement an intersection for.
// Production planners must not emit such a pair; see the MultiRange
// discussion in DESIGN.md.
func panicUnsupportedPair(a, b Filter) {
	err := cerrors.Wrapf(cerrors.ErrUnsupportedMergePair, "%s.mergeWith(%s)", a.Kind(), b.Kind())
	log.Error("unsupported merge pair", zap.Error(err))
	panic(err)
}

// nullOrFalse is the canonical "no surviving values" result of a
// mergeWith: IsNull if the conjunction still allows null, AlwaysFalse
// otherwise.
func nullOrFalse(nullAllowed bool) Filter {
	if nullAllowed {
		return NewIsNull()
	}
	return NewAlwaysFalse()
}
