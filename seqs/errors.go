package seqs

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrInvalidArgument is returned at call time when a required sequence,
	// function or comparer is nil. It is never produced mid-traversal.
	ErrInvalidArgument errorkit.Error = "seqs: invalid argument"

	// ErrInvalidCast is yielded by Cast when an element cannot be converted
	// to the requested type.
	ErrInvalidCast errorkit.Error = "seqs: invalid cast"
)

// check fails when either the sequence or the function argument is absent.
// Callers pass `fn == nil` as fnIsNil and the argument's name for the message.
func check[T any](seq iter.Seq[T], name string, fnIsNil bool) error {
	if seq == nil {
		return ErrInvalidArgument.F("source sequence is nil")
	}
	if fnIsNil {
		return ErrInvalidArgument.F("%s is nil", name)
	}
	return nil
}

// Must returns seq or panics when err is not nil.
// It is meant for chaining calls whose arguments are known to be valid:
//
//	evens := seqs.Must(seqs.Filter(slices.Values(xs), isEven))
func Must[T any](seq iter.Seq[T], err error) iter.Seq[T] {
	if err != nil {
		panic(err)
	}
	return seq
}
