package collections

// This file contains package-level generic functions for operations that
// produce a Collection of a different item type. Go methods cannot
// introduce their own type parameters, so these live outside Collection.

// Map applies fn to every item and returns a new Collection[U].
//
//	names := collections.Map(people, func(p collections.Record, _ int) string {
//	    return p["name"].(string)
//	})
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Collection[U]{items: out}
}

// Pluck returns the value of field for every item, in order. Items without
// the field contribute nil.
//
//	collections.Pluck(c, "owner.name")  // → ["Alice", "Bob", nil]
func Pluck[T any](c *Collection[T], field string) *Collection[any] {
	return Map(c, func(item T, _ int) any { return FieldValue(item, field) })
}
