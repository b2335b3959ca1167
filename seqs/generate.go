package seqs

import (
	"iter"
	"math"
)

// Range returns a lazy sequence of count consecutive integers starting at start.
// A negative count, or a range whose last value would not fit in an int, fails with
// ErrInvalidArgument.
func Range(start, count int) (iter.Seq[int], error) {
	if count < 0 {
		return nil, ErrInvalidArgument.F("count is negative: %d", count)
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return nil, ErrInvalidArgument.F("range %d+%d overflows int", start, count)
	}
	return func(yield func(int) bool) {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return
			}
		}
	}, nil
}

// Repeat returns a lazy sequence that yields value count times.
func Repeat[T any](value T, count int) (iter.Seq[T], error) {
	if count < 0 {
		return nil, ErrInvalidArgument.F("count is negative: %d", count)
	}
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}, nil
}
