package collections

import (
	"encoding/json"
	"fmt"
)

// FromJSON decodes a JSON array of objects into a Collection of records.
// Numbers decode as float64 and array elements that are not objects become
// nil records. A well-formed JSON value that is not an array yields an
// empty collection; malformed JSON returns an error.
func FromJSON(data []byte) (*Collection[Record], error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("collections: decode records: %w", err)
	}
	list, ok := raw.([]any)
	if !ok {
		return Empty[Record](), nil
	}
	items := make([]Record, 0, len(list))
	for _, v := range list {
		rec, _ := v.(map[string]any)
		items = append(items, rec)
	}
	return From(items), nil
}

// FromJSONValues decodes a JSON array into a Collection[any], keeping every
// element as decoded: objects become map[string]any, and strings, numbers
// and nested arrays are kept as they are. A well-formed JSON value that is
// not an array yields an empty collection; malformed JSON returns an error.
func FromJSONValues(data []byte) (*Collection[any], error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("collections: decode values: %w", err)
	}
	return FromAny(raw), nil
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// MarshalJSON implements [json.Marshaler].
func (c *Collection[T]) MarshalJSON() ([]byte, error) { return c.ToJSON() }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}
