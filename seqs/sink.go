package seqs

import "iter"

// ForAll reports whether every element of seq satisfies predicate.
//
// seq is ranged over eagerly and in order. The first element that fails predicate stops the
// iteration, predicate is not called for the remaining elements. An empty seq yields true.
func ForAll[T any](seq iter.Seq[T], predicate func(T) bool) (bool, error) {
	if err := check(seq, "predicate", predicate == nil); err != nil {
		return false, err
	}
	for v := range seq {
		if !predicate(v) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether at least one element of seq satisfies predicate.
// It stops at the first match; an empty seq yields false.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) (bool, error) {
	if err := check(seq, "predicate", predicate == nil); err != nil {
		return false, err
	}
	for v := range seq {
		if predicate(v) {
			return true, nil
		}
	}
	return false, nil
}

func First[T any](seq iter.Seq[T]) (T, bool, error) {
	var zero T
	if seq == nil {
		return zero, false, ErrInvalidArgument.F("source sequence is nil")
	}
	for v := range seq {
		return v, true, nil
	}
	return zero, false, nil
}

func Count[T any](seq iter.Seq[T]) (int, error) {
	if seq == nil {
		return 0, ErrInvalidArgument.F("source sequence is nil")
	}
	count := 0
	for range seq {
		count++
	}
	return count, nil
}
