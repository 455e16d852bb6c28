package collections

import "reflect"

// PullByVal removes every item whose field strictly equals value and
// returns the last item removed. It returns the zero value and false when
// nothing matched, leaving c unchanged.
//
// Numbers compare by value regardless of Go numeric type; other values
// must have the same dynamic type and be equal. Items without the field
// never match, not even a nil value.
func (c *Collection[T]) PullByVal(field string, value any) (T, bool) {
	var (
		pulled T
		found  bool
	)
	c.pull(field, func(v any) bool { return strictEqual(v, value) }, func(item T) {
		pulled, found = item, true
	})
	return pulled, found
}

// PullByVals removes every item whose field strictly equals one of values
// and returns them, in their original order, as a new collection. The
// returned collection is empty, never nil, when nothing matched.
func (c *Collection[T]) PullByVals(field string, values []any) *Collection[T] {
	pulled := Empty[T]()
	c.pull(field, func(v any) bool {
		for _, want := range values {
			if strictEqual(v, want) {
				return true
			}
		}
		return false
	}, func(item T) { pulled.Push(item) })
	return pulled
}

// Pull dispatches on valueOrValues: a slice or array pulls every listed
// value and returns a *Collection[T] (see [Collection.PullByVals]); any
// other value pulls that single value and returns the last removed item,
// or nil when nothing matched (see [Collection.PullByVal]).
func (c *Collection[T]) Pull(field string, valueOrValues any) any {
	rv := reflect.ValueOf(valueOrValues)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return c.PullByVals(field, FromAny(valueOrValues).Items())
	}
	item, ok := c.PullByVal(field, valueOrValues)
	if !ok {
		return nil
	}
	return item
}

// pull removes items whose field is present and matches, in a single pass,
// compacting the survivors to the front of the backing slice so that no
// item is skipped.
func (c *Collection[T]) pull(field string, match func(any) bool, take func(T)) {
	kept := 0
	for _, item := range c.items {
		if v, ok := LookupField(item, field); ok && match(v) {
			take(item)
			continue
		}
		c.items[kept] = item
		kept++
	}
	if kept == len(c.items) {
		return
	}
	var zero T
	for i := kept; i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = c.items[:kept]
}
