package conslist

import "golang.org/x/exp/constraints"

// Number is the constraint satisfied by the element types Sum, Product and
// AddCorresponding operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of all elements, or zero for an empty list.
func Sum[T Number](l *List[T]) T {
	var total T
	for cur := l; !cur.IsEmpty(); cur = cur.tail {
		total += cur.head
	}
	return total
}

// Product returns the product of all elements, or one for an empty list.
//
// The moment a zero element is reached, Product returns zero without
// touching the rest of the list. The elements after the zero are never
// multiplied in, which is observable with non-finite values: a NaN after a
// zero does not poison the result.
func Product[T Number](l *List[T]) T {
	product := T(1)
	for cur := l; !cur.IsEmpty(); cur = cur.tail {
		if cur.head == 0 {
			return 0
		}
		product *= cur.head
	}
	return product
}

// AddCorresponding adds the two lists element by element. The result stops
// at the shorter input, like ZipWith.
func AddCorresponding[T Number](a, b *List[T]) *List[T] {
	return ZipWith(a, b, func(x, y T) T { return x + y })
}
