package arriter

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to release resources that are still held behind the scene,
	// such as elements the iteration never produced.
	// Closing must happen on every exit path, including early returns.
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false.
	Next() bool
	// Value returns the current value in the iterator.
	// The caller owns the returned value.
	Value() V
}
