package conslist

// FoldLeft reduces the list front to back, replacing the accumulator with
// combine(accumulator, element) for every element in list order. It returns
// initial for an empty list. FoldLeft runs in constant stack space.
func FoldLeft[T, B any](l *List[T], initial B, combine func(B, T) B) B {
	acc := initial
	for cur := l; !cur.IsEmpty(); cur = cur.tail {
		acc = combine(acc, cur.head)
	}
	return acc
}

// FoldRight reduces the list back to front: conceptually it folds the tail
// first and then applies combine(head, foldedTail), so
//
//	FoldRight(Of(1, 2, 3), z, f) == f(1, f(2, f(3, z)))
//
// It returns initial for an empty list. The reduction is implemented as an
// iterative pass over the reversed list rather than by recursing down the
// spine, so stack depth does not grow with list length.
func FoldRight[T, B any](l *List[T], initial B, combine func(T, B) B) B {
	acc := initial
	for cur := l.Reverse(); !cur.IsEmpty(); cur = cur.tail {
		acc = combine(cur.head, acc)
	}
	return acc
}

// Reverse returns a list with elements in opposite order as this list. It is
// a left fold that conses every element onto a fresh list, so it runs in
// linear time.
func (l *List[T]) Reverse() *List[T] {
	return FoldLeft(l, Empty[T](), func(acc *List[T], v T) *List[T] {
		return Cons(v, acc)
	})
}
