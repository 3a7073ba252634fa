package iterators

import (
	"github.com/adamluzsi/arriter"
)

// NewMock wraps an iterator so single behaviors of the contract can be
// replaced in a test, while everything left alone keeps going to the wrapped
// iterator. Replacing Close is how the tests of this package observe that a
// consumer really triggers the drain of a by-value source; replacing Err or
// Next fakes failure modes an array backed iterator cannot produce itself.
func NewMock[T any](iter arriter.Iterator[T]) *Mock[T] {
	return &Mock[T]{
		Iterator:  iter,
		StubValue: iter.Value,
		StubClose: iter.Close,
		StubNext:  iter.Next,
		StubErr:   iter.Err,
	}
}

// Mock is a test double for the arriter.Iterator contract.
// Assign the Stub fields to override behavior; they default to the wrapped
// Iterator's own methods.
type Mock[T any] struct {
	Iterator  arriter.Iterator[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

func (m *Mock[T]) Close() error {
	return m.StubClose()
}

func (m *Mock[T]) Next() bool {
	return m.StubNext()
}

func (m *Mock[T]) Err() error {
	return m.StubErr()
}

func (m *Mock[T]) Value() T {
	return m.StubValue()
}
