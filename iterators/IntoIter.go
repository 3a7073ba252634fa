package iterators

import (
	"github.com/adamluzsi/arriter"
)

// From takes ownership of the given array and returns an iterator that hands
// out the array's elements one by one, in order.
// The caller must not touch the array after the conversion; the storage behind
// the passed pointer belongs to the iterator from here on.
//
// Each successful Next moves one element out of the array, so the element's
// ownership lands either at the caller (through Value) or, for everything the
// caller never asked for, at the Release hook during Close.
func From[T any](arr arriter.Array[T]) *IntoIter[T] {
	return &IntoIter[T]{arr: arr}
}

// FromReleasing is From with the Release hook set at construction.
func FromReleasing[T any](arr arriter.Array[T], release func(T)) *IntoIter[T] {
	i := From(arr)
	i.Release = release
	return i
}

// IntoIter is a by-value array iterator.
// The zero value is not usable; create it with From.
type IntoIter[T any] struct {
	// Release is called from Close once for every element the iteration never
	// produced, in ascending index order.
	// Leave it nil when the element type has nothing to release.
	Release func(T)

	arr    arriter.Array[T]
	index  int
	value  T
	closed bool
}

// Next moves the next element out of the array and makes it available through
// Value. It reports false once every element has been produced, and keeps
// reporting false from then on.
func (i *IntoIter[T]) Next() bool {
	if i.closed {
		return false
	}

	if i.arr.Len() <= i.index {
		return false
	}

	ptr := i.arr.At(i.index)
	i.value = *ptr

	// the slot no longer owns the element
	var zero T
	*ptr = zero

	i.index++
	return true
}

// Value returns the element moved out by the last successful Next.
// The caller owns the returned value; Close will not touch it.
func (i *IntoIter[T]) Value() T {
	return i.value
}

func (i *IntoIter[T]) Err() error {
	return nil
}

// Close hands every not yet produced element to the Release hook, in
// ascending index order, through the same move path Next uses.
// Elements already produced are never revisited.
// Close is idempotent; only the first call drains.
func (i *IntoIter[T]) Close() error {
	if i.closed {
		return nil
	}

	for i.Next() {
		if i.Release != nil {
			i.Release(i.value)
		}
	}

	var zero T
	i.value = zero
	i.closed = true
	return nil
}
