package collections

import "math"

// SumBy returns the sum of the numeric interpretation of field across all
// items. A value that is not a number makes the sum NaN; the empty
// collection sums to 0.
func (c *Collection[T]) SumBy(field string) float64 {
	sum := 0.0
	for _, item := range c.items {
		sum += toNumber(FieldValue(item, field))
	}
	return sum
}

// AverageBy returns SumBy(field) / Count(), or 0 for an empty collection.
//
// When excludeZeros is true the average is taken over the items whose
// field value is a number strictly greater than zero.
func (c *Collection[T]) AverageBy(field string, excludeZeros bool) float64 {
	if excludeZeros {
		return c.Subset(func(item T, _ int, _ []T) bool {
			return isPositive(FieldValue(item, field))
		}).AverageBy(field, false)
	}
	if c.Empty() {
		return 0
	}
	return c.SumBy(field) / float64(c.Count())
}

// CountBy counts the items sharing each distinct value of field. Keys are
// the stringified values in order of first occurrence and are compared
// case-sensitively; a nil value has the key "null" and a missing field the
// key "undefined". With excludeEmpty, items whose value is blank ("", a
// numeric zero, false or an empty slice) are skipped.
func (c *Collection[T]) CountBy(field string, excludeEmpty bool) *Counts {
	counts := newCounts()
	for _, item := range c.items {
		if excludeEmpty && blankField(item, field) {
			continue
		}
		counts.incr(fieldKey(item, field))
	}
	return counts
}

func blankField(item any, field string) bool {
	v, ok := LookupField(item, field)
	return ok && isBlank(v)
}

// FetchUniqueValues returns the distinct stringified values of field in
// order of first occurrence.
func (c *Collection[T]) FetchUniqueValues(field string, excludeEmpty bool) []string {
	return c.CountBy(field, excludeEmpty).Keys()
}

// Max returns the largest numeric value among the distinct values of field.
// It returns -Inf when there are no values and NaN when any distinct value
// is not a number, including nil values and missing fields.
func (c *Collection[T]) Max(field string) float64 {
	return extreme(c.FetchUniqueValues(field, false), math.Inf(-1), math.Max)
}

// Min returns the smallest numeric value among the distinct values of field.
// It returns +Inf when there are no values and NaN when any distinct value
// is not a number, including nil values and missing fields.
func (c *Collection[T]) Min(field string) float64 {
	return extreme(c.FetchUniqueValues(field, false), math.Inf(1), math.Min)
}

// MaxOK is like [Collection.Max] but reports false instead of -Inf when the
// collection is empty.
func (c *Collection[T]) MaxOK(field string) (float64, bool) {
	if c.Empty() {
		return 0, false
	}
	return c.Max(field), true
}

// MinOK is like [Collection.Min] but reports false instead of +Inf when the
// collection is empty.
func (c *Collection[T]) MinOK(field string) (float64, bool) {
	if c.Empty() {
		return 0, false
	}
	return c.Min(field), true
}

func extreme(values []string, start float64, pick func(a, b float64) float64) float64 {
	result := start
	for _, v := range values {
		result = pick(result, parseNumber(v))
	}
	return result
}
