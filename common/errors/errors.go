package errors

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for filter construction preconditions and merge
// dispatch. These are never expected to surface in production: a
// planner that emits them has a bug. They exist so tests and
// development builds can assert on the violated precondition class
// with errors.Is/errors.As instead of matching on panic message text.
var (
	ErrInvalidRange         = errors.New("filter: invalid range bounds")
	ErrTooFewValues         = errors.New("filter: value set has too few entries")
	ErrOverlappingRanges    = errors.New("filter: bigint ranges overlap or are unsorted")
	ErrInvalidBytesRange    = errors.New("filter: invalid bytes range bounds")
	ErrNondeterministicPair = errors.New("filter: mergeWith requires a deterministic operand")
	ErrUnsupportedMergePair = errors.New("filter: unsupported merge pair")
)

// Wrap annotates err with msg using github.com/pkg/errors, preserving
// the sentinel for errors.Is while adding the offending values to the
// message that ends up in the panic and the log line that precedes it.
func Wrap(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}
