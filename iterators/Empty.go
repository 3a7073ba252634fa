package iterators

// Empty returns an iterator that owns no elements.
// It is the Null Object of the Iterator contract: Next never produces,
// and Close has nothing to release, so it can stand in wherever an
// iteration source is required but no elements logically exist.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

// EmptyIter is an iterator over nothing.
// Every element related behavior is a no-op; closing it any number of times
// releases nothing because nothing was ever owned.
type EmptyIter[T any] struct{}

func (i *EmptyIter[T]) Close() error {
	return nil
}

func (i *EmptyIter[T]) Next() bool {
	return false
}

func (i *EmptyIter[T]) Err() error {
	return nil
}

func (i *EmptyIter[T]) Value() T {
	var v T
	return v
}
