package seqs

import "iter"

// Take returns a lazy sequence of at most the first n elements of seq.
// seq is not pulled past its n-th element, which makes Take the usual way to bound an infinite
// source.
func Take[T any](seq iter.Seq[T], n int) (iter.Seq[T], error) {
	if err := checkCount(seq, n); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}, nil
}

// Skip returns a lazy sequence of the elements of seq after the first n.
func Skip[T any](seq iter.Seq[T], n int) (iter.Seq[T], error) {
	if err := checkCount(seq, n); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

func checkCount[T any](seq iter.Seq[T], n int) error {
	if seq == nil {
		return ErrInvalidArgument.F("source sequence is nil")
	}
	if n < 0 {
		return ErrInvalidArgument.F("count is negative: %d", n)
	}
	return nil
}
