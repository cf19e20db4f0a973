// Package conslist implements a persistent singly linked list. A persistent
// data structure is a data structure that always preserves the previous
// version of itself when it is modified. Such data structures are effectively
// immutable, as their operations do not update the structure in-place, but
// instead always yield a new structure.
//
// Persistent data structures typically share structure among themselves. This
// allows operations to avoid copying the entire data structure: a list built
// on top of another list reuses the older list as its tail.
package conslist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyList is returned by operations that require at least one element
// when they are applied to an empty list. Match it with errors.Is.
var ErrEmptyList = errors.New("conslist: empty list")

// List is a persistent singly linked list of values of type T.
//
// A nil *List is a valid empty list, so the zero value is usable without
// initialization. Instances of List are immutable: every transforming
// operation returns a new list, sharing unmodified suffixes with its input.
type List[T any] struct {
	count int // the number of nodes after, and including, this one
	head  T
	tail  *List[T]
}

// Empty returns a new, empty list.
func Empty[T any]() *List[T] {
	return &List[T]{}
}

// Cons returns a new list with head as the first element and tail as the
// rest. The tail is shared, not copied.
//
// Cons has exactly the shape expected by FoldRight's combine argument, so
// FoldRight(l, Empty[T](), Cons[T]) rebuilds l.
func Cons[T any](head T, tail *List[T]) *List[T] {
	return &List[T]{
		count: tail.Length() + 1,
		head:  head,
		tail:  tail,
	}
}

// Of builds a list holding items in the given order. Of[T]() is empty.
func Of[T any](items ...T) *List[T] {
	return FromSlice(items)
}

// FromSlice builds a list holding the elements of s in order. The slice is
// not retained; the nodes are linked back to front.
func FromSlice[T any](s []T) *List[T] {
	l := Empty[T]()
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// IsEmpty returns true if the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.count == 0
}

// Length returns the number of elements in the list. This takes O(1) time.
func (l *List[T]) Length() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Head returns the first element of the list, or ErrEmptyList if the list is
// empty.
func (l *List[T]) Head() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, ErrEmptyList
	}
	return l.head, nil
}

// Tail returns the list without its first element, or ErrEmptyList if the
// list is empty. The returned list is shared with the receiver, not copied.
func (l *List[T]) Tail() (*List[T], error) {
	if l.IsEmpty() {
		return nil, ErrEmptyList
	}
	return l.rest(), nil
}

// rest returns the tail, normalizing a nil link to an empty list. Callers
// must have checked IsEmpty already.
func (l *List[T]) rest() *List[T] {
	if l.tail == nil {
		return Empty[T]()
	}
	return l.tail
}

// ForEach executes a callback for each value in the list, front to back.
func (l *List[T]) ForEach(f func(T)) {
	for cur := l; !cur.IsEmpty(); cur = cur.tail {
		f(cur.head)
	}
}

// ToSlice returns the elements of the list as a slice, in list order.
func (l *List[T]) ToSlice() []T {
	s := make([]T, 0, l.Length())
	l.ForEach(func(v T) {
		s = append(s, v)
	})
	return s
}

// String renders the list as a bracketed sequence, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	l.ForEach(func(v T) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	})
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b have the same length and pairwise-equal
// elements in order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq, allowing the two
// lists to hold different element types.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Length() != b.Length() {
		return false
	}
	for !a.IsEmpty() {
		if !eq(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
	return true
}
