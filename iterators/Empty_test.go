package iterators_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/arriter"
	"github.com/adamluzsi/arriter/iterators"
)

var _ arriter.Iterator[any] = iterators.Empty[any]()

func TestEmpty(t *testing.T) {
	t.Run(`#Next`, func(t *testing.T) {
		t.Parallel()

		subject := iterators.Empty[int]()

		times := rand.Intn(42) + 1
		for i := 0; i < times; i++ {
			require.False(t, subject.Next())
		}
	})

	t.Run(`#Close`, func(t *testing.T) {
		t.Parallel()

		subject := iterators.Empty[int]()

		times := rand.Intn(42) + 1
		for i := 0; i < times; i++ {
			require.Nil(t, subject.Close())
		}
	})

	t.Run(`#Err`, func(t *testing.T) {
		t.Parallel()

		require.Nil(t, iterators.Empty[int]().Err())
	})

	t.Run(`#Value`, func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 0, iterators.Empty[int]().Value())
	})
}
