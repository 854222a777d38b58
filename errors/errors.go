// Package errors provides error handling for beanpath.
//
// It re-exports github.com/cockroachdb/errors and defines the sentinel kinds
// raised by introspection and path navigation. Errors raised by the library
// carry a sentinel kind, so callers branch with errors.Is:
//
//	v, err := nav.GetValue("items[3].price")
//	if errors.Is(err, errors.ErrIndexOutOfBounds) {
//	    // ...
//	}
//
// Errors returned by accessor methods are wrapped with the method name and
// carry no kind of their own. An object factory failure is marked
// ErrInstantiation on top of whatever kind the factory used, and a malformed
// index is marked ErrIndexOutOfBounds while keeping its strconv cause.
//
// Suggestions ("did you mean ...") travel as hints, see GetAllHints.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
	Mark               = crdb.Mark
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel kinds. Wrap these with Wrapf to add context while preserving the kind.
var (
	// ErrAmbiguousAccessor indicates two getters or two setters of one property
	// with unrelated types. Introspection of the whole type is aborted.
	ErrAmbiguousAccessor = New("ambiguous accessor")

	// ErrMissingAccessor indicates a read or write of a property that has no binding.
	ErrMissingAccessor = New("missing accessor")

	// ErrNotACollection indicates indexed access on a value that is neither a map nor a sequence.
	ErrNotACollection = New("not a collection")

	// ErrIndexOutOfBounds indicates a sequence index outside the current length,
	// or an index that is not an integer.
	ErrIndexOutOfBounds = New("index out of bounds")

	// ErrUnsupportedOperation indicates a query or mutation the wrapper kind does not support.
	ErrUnsupportedOperation = New("unsupported operation")

	// ErrInstantiation indicates a missing intermediate value could not be created.
	ErrInstantiation = New("instantiation failure")

	// ErrNotAddressable indicates a write through a value that cannot be modified in place.
	ErrNotAddressable = New("value is not addressable")

	// ErrTypeMismatch indicates a value that is not assignable to the declared type.
	ErrTypeMismatch = New("type mismatch")
)

// Kind returns the sentinel wrapped by err, or nil when err carries none of them.
func Kind(err error) error {
	if err == nil {
		return nil
	}

	for _, kind := range []error{
		ErrAmbiguousAccessor,
		ErrMissingAccessor,
		ErrNotACollection,
		ErrIndexOutOfBounds,
		ErrUnsupportedOperation,
		ErrInstantiation,
		ErrNotAddressable,
		ErrTypeMismatch,
	} {
		if Is(err, kind) {
			return kind
		}
	}

	return nil
}
