package seqs

import (
	"iter"
	"reflect"
	"slices"
)

// Cast converts the elements of an untyped sequence to R.
//
// source may be any rangeable value: a function shaped like iter.Seq, a slice, an array or a
// receive channel. A nil source, or a value that cannot be ranged over, fails with
// ErrInvalidArgument. A nil slice is an empty sequence.
//
// When source already is an iter.Seq2[R, error] it is returned as is, and an iter.Seq[R] or []R
// is passed through without any per-element conversion.
//
// Conversion is a dynamic type assertion done lazily, one element per pull. The first element
// that is not an R is yielded together with ErrInvalidCast and ends the sequence; elements
// yielded before it remain valid. A nil element becomes the zero R when R can hold nil.
func Cast[R any](source any) (iter.Seq2[R, error], error) {
	switch src := source.(type) {
	case nil:
		return nil, ErrInvalidArgument.F("source sequence is nil")
	case iter.Seq2[R, error]:
		if src == nil {
			return nil, ErrInvalidArgument.F("source sequence is nil")
		}
		return src, nil
	case iter.Seq[R]:
		if src == nil {
			return nil, ErrInvalidArgument.F("source sequence is nil")
		}
		return withoutErrors(src), nil
	case []R:
		return withoutErrors(slices.Values(src)), nil
	}

	values, err := reflectValues(reflect.ValueOf(source))
	if err != nil {
		return nil, err
	}
	target := reflect.TypeFor[R]()
	return func(yield func(R, error) bool) {
		var index int
		for v := range values {
			r, ok := assertTo[R](v)
			if !ok {
				yield(r, ErrInvalidCast.F("element %d of type %s is not %s", index, dynamicTypeName(v), target))
				return
			}
			if !yield(r, nil) {
				return
			}
			index++
		}
	}, nil
}

func withoutErrors[T any](seq iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// reflectValues turns a rangeable value into a sequence of its elements.
func reflectValues(rv reflect.Value) (iter.Seq[reflect.Value], error) {
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return nil, ErrInvalidArgument.F("source sequence is nil")
		}
		if !isSeqFunc(rv.Type()) {
			return nil, ErrInvalidArgument.F("%s is not an iterator function", rv.Type())
		}
		return rv.Seq(), nil

	case reflect.Chan:
		if rv.IsNil() {
			return nil, ErrInvalidArgument.F("source channel is nil")
		}
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			return nil, ErrInvalidArgument.F("%s cannot be received from", rv.Type())
		}
		return rv.Seq(), nil

	case reflect.Slice, reflect.Array:
		return func(yield func(reflect.Value) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i)) {
					return
				}
			}
		}, nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, ErrInvalidArgument.F("source sequence is nil")
		}
		return nil, ErrInvalidArgument.F("%s is not a sequence", rv.Type())

	default:
		return nil, ErrInvalidArgument.F("%s is not a sequence", rv.Type())
	}
}

// isSeqFunc reports whether t has the shape func(yield func(E) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func assertTo[R any](v reflect.Value) (R, bool) {
	var zero R
	x := v.Interface()
	if x == nil {
		return zero, canBeNil(reflect.TypeFor[R]())
	}
	r, ok := x.(R)
	return r, ok
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func dynamicTypeName(v reflect.Value) string {
	x := v.Interface()
	if x == nil {
		return "nil"
	}
	return reflect.TypeOf(x).String()
}
