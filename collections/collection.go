package collections

import (
	"reflect"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Collection is a mutable wrapper around an ordered slice of records.
//
// Unlike most slice helpers, Collection owns its backing slice and changes it
// in place: [Collection.Push], [Collection.Filter], [Collection.SortBy],
// [Collection.PullByVal], [Collection.PullByVals] and [Collection.Transform]
// all alter the receiver and return it for chaining. Query operations such
// as [Collection.Subset] and [Collection.GroupBy] return new collections.
//
// # Creating a collection
//
//	c := collections.New(collections.Record{"foo": 3}, collections.Record{"foo": 6})
//	c := collections.From(records)          // wraps records, no copy
//	c := collections.FromAny(decoded)        // any slice, or empty
//	c := collections.Empty[collections.Record]()
//
// # Method chaining
//
//	cheap := collections.From(products).
//	    Filter(func(p collections.Record, _ int, _ []collections.Record) bool {
//	        return p["price"].(float64) < 10
//	    }).
//	    SortBy("name").
//	    Items()
//
// # Fields
//
// Aggregation, grouping, extraction and sorting are keyed by a field name
// that is only known at call time. See [FieldValue] for how a field is
// resolved on an item.
//
// A Collection is not safe for concurrent use.
type Collection[T any] struct {
	items []T
}

// Predicate is called with an item, its index and the full slice the
// item belongs to.
type Predicate[T any] func(item T, index int, items []T) bool

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items.
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection that takes ownership of items. The slice is not
// copied; a nil slice becomes an empty one.
func From[T any](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// FromAny creates a Collection[any] from any slice or array value. Input
// that is not a sequence (nil, maps, scalars) silently yields an empty
// collection.
//
// A []any argument is wrapped without copying; other slice types are
// boxed element by element into a new slice.
func FromAny(v any) *Collection[any] {
	if items, ok := v.([]any); ok {
		return From(items)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Empty[any]()
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return From(items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// Empty reports whether the collection contains no items.
func (c *Collection[T]) Empty() bool { return c.Count() <= 0 }

// First returns the first item. It returns the zero value and false when
// the collection is empty.
func (c *Collection[T]) First() (T, bool) {
	var zero T
	if c.Empty() {
		return zero, false
	}
	return c.items[0], true
}

// Last returns the last item. It returns the zero value and false when the
// collection is empty.
func (c *Collection[T]) Last() (T, bool) {
	var zero T
	if c.Empty() {
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// Items returns the live backing slice, not a copy. Writes to its elements
// are visible through the collection, and the collection's own in-place
// operations are visible through it until the slice is replaced: Push may
// reallocate, Filter allocates a new slice, and the Pull operations shorten
// it.
func (c *Collection[T]) Items() []T { return c.items }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Push appends item to the end of the collection and returns c.
func (c *Collection[T]) Push(item T) *Collection[T] {
	c.items = append(c.items, item)
	return c
}

// Filter keeps only the items for which fn returns true and returns c.
// fn sees the slice as it was before filtering began.
//
// Use [Collection.Subset] to filter without modifying c.
func (c *Collection[T]) Filter(fn Predicate[T]) *Collection[T] {
	c.items = c.matching(fn)
	return c
}

// Transform calls fn for every item in order and returns c. It is meant for
// in-place mutation of each record; for value item types, assign through
// the items argument (items[index] = …).
func (c *Collection[T]) Transform(fn func(item T, index int, items []T)) *Collection[T] {
	for i, item := range c.items {
		fn(item, i, c.items)
	}
	return c
}

// SortBy sorts the collection in place, ascending by field, and returns c.
//
// Values that are finite numbers (or strings that parse entirely as one)
// compare numerically; every other value compares by its lowercased string
// form. A number and a string compare as equal. The sort is stable.
func (c *Collection[T]) SortBy(field string) *Collection[T] {
	lower := cases.Lower(language.Und)
	keys := make([]sortKey, len(c.items))
	for i, item := range c.items {
		keys[i] = sortKeyOf(FieldValue(item, field), lower)
	}
	sort.Stable(&keyedSort[T]{items: c.items, keys: keys})
	return c
}

// SortedBy returns a sorted copy of c, leaving c unchanged. It is the
// non-mutating counterpart of [Collection.SortBy].
func (c *Collection[T]) SortedBy(field string) *Collection[T] {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return From(out).SortBy(field)
}

type keyedSort[T any] struct {
	items []T
	keys  []sortKey
}

func (s *keyedSort[T]) Len() int           { return len(s.items) }
func (s *keyedSort[T]) Less(i, j int) bool { return compareKeys(s.keys[i], s.keys[j]) < 0 }
func (s *keyedSort[T]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Subset returns a new collection with the items for which fn returns true.
// c is left unchanged.
func (c *Collection[T]) Subset(fn Predicate[T]) *Collection[T] {
	return From(c.matching(fn))
}

func (c *Collection[T]) matching(fn Predicate[T]) []T {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i, c.items) {
			out = append(out, item)
		}
	}
	return out
}
