package seqs

import "iter"

// Filter returns a lazy sequence of the elements of seq that satisfy predicate, in source order.
//
// Nothing is pulled from seq and predicate is not called until the result is ranged over.
// Each pull advances seq only until the next matching element, so infinite sources are fine
// as long as the consumer stops. The result is single-pass whenever seq is.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) (iter.Seq[T], error) {
	if err := check(seq, "predicate", predicate == nil); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}, nil
}

// Transform returns a lazy sequence whose i-th element is transformer applied to the i-th element of seq.
// Unlike Filter it never changes the number of elements.
func Transform[T, R any](seq iter.Seq[T], transformer func(T) R) (iter.Seq[R], error) {
	if err := check(seq, "transformer", transformer == nil); err != nil {
		return nil, err
	}
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transformer(v)) {
				return
			}
		}
	}, nil
}
