package collections

// Enumerable is the read surface of [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass a
// Collection, or any other ordered container, without depending on the
// concrete *Collection type.
type Enumerable[T any] interface {
	// Count returns the number of items.
	Count() int

	// Empty reports whether there are no items.
	Empty() bool

	// First returns the first item, or the zero value and false.
	First() (T, bool)

	// Last returns the last item, or the zero value and false.
	Last() (T, bool)

	// Items returns the live backing slice.
	Items() []T
}

var _ Enumerable[Record] = (*Collection[Record])(nil)
