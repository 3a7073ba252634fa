package iterators_test

import (
	"github.com/adamluzsi/arriter/arrays"
)

// elem is a test element whose release can be traced back through its identity.
type elem struct {
	ID int
}

// releaseRecorder records the identity of released elements in release order.
type releaseRecorder struct {
	Released []int
}

func (r *releaseRecorder) Release(e elem) {
	r.Released = append(r.Released, e.ID)
}

func (r *releaseRecorder) TimesReleased(id int) int {
	var total int
	for _, got := range r.Released {
		if got == id {
			total++
		}
	}
	return total
}

// elemsOf8 returns an array of 8 traceable elements, identified by index.
func elemsOf8() *arrays.Of8[elem] {
	var arr arrays.Of8[elem]
	for i := 0; i < arr.Len(); i++ {
		*arr.At(i) = elem{ID: i}
	}
	return &arr
}
