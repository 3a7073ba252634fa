package iterators

import (
	"github.com/adamluzsi/arriter"
)

// Count iterates the given iterator to exhaustion and returns the total
// number of elements it produced.
//
// Counting is consuming: every element is moved out and discarded along the
// way, and the iterator is closed before returning, so with a by-value source
// the backing array ends up fully drained.
func Count[T any](iter arriter.Iterator[T]) (int, error) {
	defer iter.Close()

	total := 0

	for iter.Next() {
		total++
	}

	return total, iter.Err()
}
