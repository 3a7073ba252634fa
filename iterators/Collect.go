package iterators

import (
	"github.com/adamluzsi/arriter"
)

// Collect drains the iterator into a slice and closes it.
// Closing happens on every path, so with a by-value source the not collected
// elements are still released when an error cuts the collection short.
func Collect[T any](iter arriter.Iterator[T]) (vs []T, err error) {
	defer func() {
		cErr := iter.Close()
		if err == nil {
			err = cErr
		}
	}()

	for iter.Next() {
		vs = append(vs, iter.Value())
	}

	return vs, iter.Err()
}
