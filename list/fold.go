package list

import (
	"github.com/npillmayer/adt"
)

// FoldLeft reduces a list to a single value, combining elements strictly
// left to right:
//
//     FoldLeft((1 2 3), z, f) = f(f(f(z, 1), 2), 3)
//
// It is iterative and safe for long lists.
func FoldLeft[T, B any](l List[T], z B, f func(B, T) B) B {
	acc := z
	for c := l.head; c != nil; c = c.rest {
		acc = f(acc, c.item)
	}
	return acc
}

// FoldRight reduces a list respecting its recursive structure, combining
// right to left:
//
//     FoldRight((1 2 3), z, f) = f(1, f(2, f(3, z)))
//
// It is implemented as a left fold over the reversed list, so stack usage
// stays constant regardless of list length.
func FoldRight[T, B any](l List[T], z B, f func(T, B) B) B {
	return FoldLeft(l.Reverse(), z, func(acc B, x T) B {
		return f(x, acc)
	})
}

// Sum adds up all elements; 0 for the empty list.
func Sum[T adt.Numeric](l List[T]) T {
	var zero T
	return FoldLeft(l, zero, func(acc, x T) T {
		return acc + x
	})
}

// Product multiplies all elements; 1 for the empty list. It short-circuits
// to 0 as soon as a zero element is encountered, without visiting the rest
// of the list.
func Product[T adt.Numeric](l List[T]) T {
	var zero T
	acc := zero + 1
	for c := l.head; c != nil; c = c.rest {
		if c.item == zero {
			tracer().Debugf("product: zero element, short-circuiting")
			return zero
		}
		acc *= c.item
	}
	return acc
}

// Append concatenates two lists; Append(Empty, b) == b.
func Append[T any](a, b List[T]) List[T] {
	return a.Append(b)
}

// Map transforms every element with f, preserving order. The result has
// the same length as l.
//
// Note that folding from the left and prepending would reverse the element
// order; Map folds from the right instead.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	return FoldRight(l, List[U]{}, func(x T, acc List[U]) List[U] {
		return Cons(f(x), acc)
	})
}

// FlatMap maps every element to a list and concatenates the results in
// order.
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	return FoldRight(l, List[U]{}, func(x T, acc List[U]) List[U] {
		return f(x).Append(acc)
	})
}

// FilterViaFlatMap is Filter expressed through FlatMap. It produces the
// same output as List.Filter for every input.
func FilterViaFlatMap[T any](l List[T], pred func(T) bool) List[T] {
	return FlatMap(l, func(x T) List[T] {
		if pred(x) {
			return New(x)
		}
		return List[T]{}
	})
}

// Concat flattens a list of lists, preserving order. Runtime is linear in
// the total number of elements.
func Concat[T any](ll List[List[T]]) List[T] {
	return FoldRight(ll, List[T]{}, func(l, acc List[T]) List[T] {
		return l.Append(acc)
	})
}

// ZipWith combines two lists pairwise with f. The result is as long as the
// shorter input; surplus elements of the longer one are ignored.
func ZipWith[T, U, V any](a List[T], b List[U], f func(T, U) V) List[V] {
	var head, tail *cell[V]
	ca, cb := a.head, b.head
	for ca != nil && cb != nil {
		head, tail = snoc(head, tail, f(ca.item, cb.item))
		ca, cb = ca.rest, cb.rest
	}
	return List[V]{head: head}
}

// Zip pairs up two lists, truncating to the shorter length.
func Zip[A, B any](a List[A], b List[B]) List[adt.Pair[A, B]] {
	return ZipWith(a, b, adt.P[A, B])
}

// AddElements adds two numeric lists pairwise, truncating to the shorter
// length:
//
//     AddElements((1 2 3), (4 5 6)) = (5 7 9)
//
func AddElements[T adt.Numeric](a, b List[T]) List[T] {
	return ZipWith(a, b, func(x, y T) T {
		return x + y
	})
}
