package iterators

import (
	"github.com/adamluzsi/arriter"
)

// Break can be returned from the ForEach block to stop the iteration early
// without reporting an error.
const Break arriter.Error = `iterators:break`

// ForEach calls the given block with every element of the iterator,
// then closes the iterator.
func ForEach[T any](iter arriter.Iterator[T], blk func(T) error) (rErr error) {
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for iter.Next() {
		if err := blk(iter.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	return iter.Err()
}
