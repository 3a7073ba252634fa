// Package arriter provides by-value iteration over fixed size arrays.
//
// A fixed size array normally hands out its elements only through copies or
// borrowed pointers, and every element stays owned by the array until the
// array itself goes out of use. Converting an array with iterators.From
// inverts that: the iterator takes over the array, and each call to Next
// moves the next element out, handing its ownership to the caller.
// Whatever the caller never asked for is handed to the iterator's Release
// hook when the iterator gets closed, so no element is released twice and
// no element is forgotten, no matter how early the iteration stops.
package arriter

// Array is the capability a fixed length array type must provide to be usable
// as an iteration source. One implementation exists per supported length (0 to
// 32) in the arrays package; an array type of any other length simply does not
// satisfy Array, which keeps unsupported lengths a compile time error.
type Array[T any] interface {
	// Len returns the number of elements the array holds.
	// The result is a constant of the implementing type.
	Len() int
	// At returns the address of the element at the given position within the
	// array's storage, without copying or moving the element.
	// At performs no bounds checking on its own; the given index must be in
	// the [0, Len()) range.
	At(i int) *T
}
