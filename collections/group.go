package collections

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Counts maps distinct field values to the number of items holding them,
// keeping keys in order of first occurrence. It is returned by
// [Collection.CountBy].
type Counts struct {
	keys   []string
	counts map[string]int
}

func newCounts() *Counts {
	return &Counts{keys: []string{}, counts: make(map[string]int)}
}

func (c *Counts) incr(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

// Keys returns the distinct values in order of first occurrence.
func (c *Counts) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get returns the count for key and whether key was seen.
func (c *Counts) Get(key string) (int, bool) {
	n, ok := c.counts[key]
	return n, ok
}

// Len returns the number of distinct values.
func (c *Counts) Len() int { return len(c.keys) }

// Pairs returns (value, count) pairs in order of first occurrence.
func (c *Counts) Pairs() []Pair[string, int] {
	out := make([]Pair[string, int], len(c.keys))
	for i, k := range c.keys {
		out[i] = Pair[string, int]{First: k, Second: c.counts[k]}
	}
	return out
}

// Map returns the counts as a plain, unordered map.
func (c *Counts) Map() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, n := range c.counts {
		out[k] = n
	}
	return out
}

// MarshalJSON encodes the counts as a JSON object whose keys appear in
// order of first occurrence.
func (c *Counts) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c.counts[k]))
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// String returns the JSON form of the counts.
func (c *Counts) String() string {
	b, _ := c.MarshalJSON()
	return string(b)
}

// Groups maps distinct field values to collections of the items holding
// them, keeping keys in order of first occurrence. It is returned by
// [Collection.GroupBy].
type Groups[T any] struct {
	keys   []string
	groups map[string]*Collection[T]
}

// Keys returns the group keys in order of first occurrence.
func (g *Groups[T]) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the group for key and whether it exists.
func (g *Groups[T]) Get(key string) (*Collection[T], bool) {
	c, ok := g.groups[key]
	return c, ok
}

// Len returns the number of groups.
func (g *Groups[T]) Len() int { return len(g.keys) }

// Each calls fn for every group in key order.
func (g *Groups[T]) Each(fn func(key string, c *Collection[T])) {
	for _, k := range g.keys {
		fn(k, g.groups[k])
	}
}

// MarshalJSON encodes the groups as a JSON object of arrays whose keys
// appear in order of first occurrence.
func (g *Groups[T]) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		items, err := g.groups[k].ToJSON()
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(items)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// GroupBy splits the items into new collections by the distinct values of
// field, using the same keys and ordering as [Collection.CountBy]. Items
// keep their relative order within a group. With excludeEmpty, items with a
// blank value are left out, so groups such as "" or "0" are omitted
// entirely.
func (c *Collection[T]) GroupBy(field string, excludeEmpty bool) *Groups[T] {
	g := &Groups[T]{keys: []string{}, groups: make(map[string]*Collection[T])}
	for _, item := range c.items {
		if excludeEmpty && blankField(item, field) {
			continue
		}
		key := fieldKey(item, field)
		group, ok := g.groups[key]
		if !ok {
			group = Empty[T]()
			g.groups[key] = group
			g.keys = append(g.keys, key)
		}
		group.Push(item)
	}
	return g
}
