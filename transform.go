package conslist

// SetHead returns a new list with v in place of the first element, or
// ErrEmptyList if the list is empty. The original tail is shared unchanged.
func (l *List[T]) SetHead(v T) (*List[T], error) {
	if l.IsEmpty() {
		return nil, ErrEmptyList
	}
	return Cons(v, l.rest()), nil
}

// Drop returns the list without its first n elements. If n <= 0 the list is
// returned unchanged; dropping more elements than the list holds yields an
// empty list. Unlike Tail, Drop never fails.
func (l *List[T]) Drop(n int) *List[T] {
	cur := l
	for n > 0 && !cur.IsEmpty() {
		cur = cur.rest()
		n--
	}
	if cur == nil {
		return Empty[T]()
	}
	return cur
}

// DropWhile returns the list without its longest prefix of elements
// satisfying pred. It stops at the first element that fails pred, or at the
// end of the list.
func (l *List[T]) DropWhile(pred func(T) bool) *List[T] {
	cur := l
	for !cur.IsEmpty() && pred(cur.head) {
		cur = cur.rest()
	}
	if cur == nil {
		return Empty[T]()
	}
	return cur
}

// Init returns all elements except the last, or ErrEmptyList if the list is
// empty. The spine is rebuilt in a single pass over the collected elements;
// appending element by element instead would be quadratic.
func (l *List[T]) Init() (*List[T], error) {
	if l.IsEmpty() {
		return nil, ErrEmptyList
	}
	items := l.ToSlice()
	return FromSlice(items[:len(items)-1]), nil
}

// Filter returns the elements satisfying pred, preserving their relative
// order.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	kept := make([]T, 0, l.Length())
	l.ForEach(func(v T) {
		if pred(v) {
			kept = append(kept, v)
		}
	})
	return FromSlice(kept)
}

// Append returns all elements of a followed by all elements of b. If a is
// empty, b itself is returned unchanged; otherwise a's spine is rebuilt with
// b shared as the tail of the last new node.
func Append[T any](a, b *List[T]) *List[T] {
	if a.IsEmpty() {
		return b
	}
	items := a.ToSlice()
	res := b
	for i := len(items) - 1; i >= 0; i-- {
		res = Cons(items[i], res)
	}
	return res
}

// Concat flattens a list of lists by one level, preserving order. Each inner
// list's spine is copied at most once, so the whole pass is linear in the
// total number of elements.
func Concat[T any](lists *List[*List[T]]) *List[T] {
	return FoldRight(lists, Empty[T](), Append[T])
}

// Map returns a list holding f applied to every element, in order.
func Map[T, U any](l *List[T], f func(T) U) *List[U] {
	out := make([]U, 0, l.Length())
	l.ForEach(func(v T) {
		out = append(out, f(v))
	})
	return FromSlice(out)
}

// FlatMap applies f to every element and concatenates the resulting lists,
// in order.
func FlatMap[T, U any](l *List[T], f func(T) *List[U]) *List[U] {
	return Concat(Map(l, f))
}

// ZipWith combines the two lists pairwise with f. The result has
// min(a.Length(), b.Length()) elements: zipping stops as soon as either
// input runs out.
func ZipWith[T, U, V any](a *List[T], b *List[U], f func(T, U) V) *List[V] {
	n := a.Length()
	if b.Length() < n {
		n = b.Length()
	}
	out := make([]V, 0, n)
	for !a.IsEmpty() && !b.IsEmpty() {
		out = append(out, f(a.head, b.head))
		a, b = a.tail, b.tail
	}
	return FromSlice(out)
}
