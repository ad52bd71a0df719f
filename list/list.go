package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/adt/maybe"
)

// List is an immutable singly linked list of elements of type T.
// The zero value is the empty list, i.e. this is legal:
//
//     var l list.List[int]
//     l = list.Cons(7, l)     // ⇒ (7)
//
// A list value is never modified after creation; tails are shared
// between incarnations.
type List[T any] struct {
	head *cell[T]
}

// cell is a cons cell. A nil *cell is the empty list.
type cell[T any] struct {
	item T
	rest *cell[T]
}

// ErrEmptyList is returned by Tail for the empty list. No other operation
// produces an error.
var ErrEmptyList = errors.New("list is empty")

// --- Construction ----------------------------------------------------------

// New creates a list from items, preserving their order.
func New[T any](items ...T) List[T] {
	var head *cell[T]
	for i := len(items) - 1; i >= 0; i-- {
		head = &cell[T]{item: items[i], rest: head}
	}
	return List[T]{head: head}
}

// Empty returns the empty list for type T, equivalent to the zero value.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons prepends head to tail. tail is left unchanged and becomes a shared
// sub-structure of the result.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{head: &cell[T]{item: head, rest: tail.head}}
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Head returns the first element, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.item)
}

// Last returns the final element, or Nothing for the empty list.
func (l List[T]) Last() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	c := l.head
	for c.rest != nil {
		c = c.rest
	}
	return maybe.Just(c.item)
}

// Tail returns the list without its first element. Taking the tail of the
// empty list is the one partial operation on lists; it returns ErrEmptyList.
func (l List[T]) Tail() (List[T], error) {
	if l.head == nil {
		return List[T]{}, ErrEmptyList
	}
	return List[T]{head: l.head.rest}, nil
}

// SetHead replaces the first element of a list. For the empty list it
// returns the one-element list: no error, in contrast to Tail. Callers
// relying on length preservation have to check IsEmpty first.
func (l List[T]) SetHead(h T) List[T] {
	if l.head == nil {
		return Cons(h, l)
	}
	return List[T]{head: &cell[T]{item: h, rest: l.head.rest}}
}

// Drop removes the first n elements. Dropping more elements than present
// yields the empty list; n ≤ 0 returns l unchanged.
func (l List[T]) Drop(n int) List[T] {
	c := l.head
	for n > 0 && c != nil {
		c = c.rest
		n--
	}
	tracer().Debugf("drop: %d elements remaining to drop at end of list", n)
	return List[T]{head: c}
}

// DropWhile removes the leading run of elements satisfying pred. It stops
// at the first element failing pred.
func (l List[T]) DropWhile(pred func(T) bool) List[T] {
	c := l.head
	for c != nil && pred(c.item) {
		c = c.rest
	}
	return List[T]{head: c}
}

// Take returns the first n elements. Taking more elements than present
// yields a copy of l; n ≤ 0 yields the empty list.
func (l List[T]) Take(n int) List[T] {
	var head, tail *cell[T]
	for c := l.head; n > 0 && c != nil; c = c.rest {
		head, tail = snoc(head, tail, c.item)
		n--
	}
	return List[T]{head: head}
}

// TakeWhile returns the leading run of elements satisfying pred.
func (l List[T]) TakeWhile(pred func(T) bool) List[T] {
	var head, tail *cell[T]
	for c := l.head; c != nil && pred(c.item); c = c.rest {
		head, tail = snoc(head, tail, c.item)
	}
	return List[T]{head: head}
}

// Init returns all elements except the last one. The empty list and
// one-element lists both yield the empty list.
func (l List[T]) Init() List[T] {
	if l.head == nil {
		return l
	}
	var head, tail *cell[T]
	for c := l.head; c.rest != nil; c = c.rest {
		head, tail = snoc(head, tail, c.item)
	}
	return List[T]{head: head}
}

// Append concatenates l and other. The result shares other's cells, while
// l's cells are copied.
func (l List[T]) Append(other List[T]) List[T] {
	return FoldRight(l, other, Cons[T])
}

// Filter keeps the elements satisfying pred, preserving their order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	var head, tail *cell[T]
	for c := l.head; c != nil; c = c.rest {
		if pred(c.item) {
			head, tail = snoc(head, tail, c.item)
		}
	}
	return List[T]{head: head}
}

// Exists returns true if at least one element satisfies pred. It
// short-circuits on the first hit.
func (l List[T]) Exists(pred func(T) bool) bool {
	for c := l.head; c != nil; c = c.rest {
		if pred(c.item) {
			return true
		}
	}
	return false
}

// ForAll returns true if every element satisfies pred; true for the empty
// list.
func (l List[T]) ForAll(pred func(T) bool) bool {
	for c := l.head; c != nil; c = c.rest {
		if !pred(c.item) {
			return false
		}
	}
	return true
}

// Length returns the number of elements.
func (l List[T]) Length() int {
	return FoldRight(l, 0, func(_ T, acc int) int {
		return acc + 1
	})
}

// Reverse returns a list with the element order flipped.
// Reversing twice restores the original list.
func (l List[T]) Reverse() List[T] {
	return FoldLeft(l, List[T]{}, func(acc List[T], x T) List[T] {
		return Cons(x, acc)
	})
}

// ToSlice copies the elements into a fresh slice, in list order. The empty
// list yields nil.
func (l List[T]) ToSlice() []T {
	if l.head == nil {
		return nil
	}
	s := make([]T, 0, l.Length())
	for c := l.head; c != nil; c = c.rest {
		s = append(s, c.item)
	}
	return s
}

func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for c := l.head; c != nil; c = c.rest {
		if c != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, c.item)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal compares two lists element-wise.
func Equal[T comparable](a, b List[T]) bool {
	ca, cb := a.head, b.head
	for ca != nil && cb != nil {
		if ca.item != cb.item {
			return false
		}
		ca, cb = ca.rest, cb.rest
	}
	return ca == nil && cb == nil
}

// snoc appends an element at the tail end of a cell chain under
// construction. Never call it on a chain which already escaped into a
// List value.
func snoc[T any](head, tail *cell[T], x T) (*cell[T], *cell[T]) {
	c := &cell[T]{item: x}
	if tail == nil {
		return c, c
	}
	tail.rest = c
	return head, c
}
