package seqs

import (
	"cmp"
	"iter"
	"sort"

	"github.com/go-softwarelab/common/pkg/types"
)

// SortBy sorts the elements of seq in ascending order of the key extracted by key.
//
// Unlike Filter and Transform, sorting is eager: seq is drained and sorted before SortBy
// returns, so seq must be finite. key is called exactly once per element, and never for an
// empty seq. The sort is stable, elements with equal keys keep their source order.
// The returned sequence walks the sorted buffer and can be ranged over more than once.
func SortBy[T any, K types.Ordered](seq iter.Seq[T], key func(T) K) (iter.Seq[T], error) {
	if err := check(seq, "key selector", key == nil); err != nil {
		return nil, err
	}
	return sortedBy(seq, key, cmp.Compare[K], ascending), nil
}

// SortByFunc is like SortBy but orders keys with compare, which must return a negative number
// when a < b, a positive number when a > b and zero when they are equal.
func SortByFunc[T, K any](seq iter.Seq[T], key func(T) K, compare func(a, b K) int) (iter.Seq[T], error) {
	if err := checkSortArgs(seq, key, compare); err != nil {
		return nil, err
	}
	return sortedBy(seq, key, compare, ascending), nil
}

// SortByDescending sorts the elements of seq in descending order of the key extracted by key.
// Elements with equal keys keep their source order, so the result is not the reverse of SortBy.
func SortByDescending[T any, K types.Ordered](seq iter.Seq[T], key func(T) K) (iter.Seq[T], error) {
	if err := check(seq, "key selector", key == nil); err != nil {
		return nil, err
	}
	return sortedBy(seq, key, cmp.Compare[K], descending), nil
}

// SortByDescendingFunc is like SortByDescending but orders keys with compare.
func SortByDescendingFunc[T, K any](seq iter.Seq[T], key func(T) K, compare func(a, b K) int) (iter.Seq[T], error) {
	if err := checkSortArgs(seq, key, compare); err != nil {
		return nil, err
	}
	return sortedBy(seq, key, compare, descending), nil
}

func checkSortArgs[T, K any](seq iter.Seq[T], key func(T) K, compare func(a, b K) int) error {
	if err := check(seq, "key selector", key == nil); err != nil {
		return err
	}
	if compare == nil {
		return ErrInvalidArgument.F("comparer is nil")
	}
	return nil
}

type direction int

const (
	ascending  direction = 1
	descending direction = -1
)

// directed flips the sign of compare for descending order.
// Results are normalised to -1, 0, 1 first so that negating math.MinInt cannot overflow.
func directed[K any](compare func(a, b K) int, d direction) func(a, b K) int {
	return func(a, b K) int {
		c := compare(a, b)
		switch {
		case c < 0:
			return -int(d)
		case c > 0:
			return int(d)
		default:
			return 0
		}
	}
}

// keyedBuffer keeps values and their precomputed keys in parallel slices.
type keyedBuffer[T, K any] struct {
	values  []T
	keys    []K
	compare func(a, b K) int
}

func (b *keyedBuffer[T, K]) Len() int {
	return len(b.values)
}

func (b *keyedBuffer[T, K]) Less(i, j int) bool {
	return b.compare(b.keys[i], b.keys[j]) < 0
}

func (b *keyedBuffer[T, K]) Swap(i, j int) {
	b.values[i], b.values[j] = b.values[j], b.values[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

func sortedBy[T, K any](seq iter.Seq[T], key func(T) K, compare func(a, b K) int, d direction) iter.Seq[T] {
	buf := &keyedBuffer[T, K]{compare: directed(compare, d)}
	for v := range seq {
		buf.values = append(buf.values, v)
		buf.keys = append(buf.keys, key(v))
	}
	sort.Stable(buf)

	values := buf.values
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
