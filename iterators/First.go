package iterators

import (
	"github.com/adamluzsi/arriter"
)

// First returns the first element of the iterator and closes the iterator.
// The second return value tells whether the iterator had any element at all.
func First[T any](iter arriter.Iterator[T]) (v T, found bool, err error) {
	defer func() {
		cErr := iter.Close()
		if err == nil {
			err = cErr
		}
	}()

	if !iter.Next() {
		return v, false, iter.Err()
	}

	return iter.Value(), true, iter.Err()
}
