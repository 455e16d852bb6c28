// Package arr provides dot-notation access to record values stored as
// nested map[string]any structures.
//
// Records decoded from JSON are maps of maps; a field name such as
// "owner.address.city" walks through the nested maps one segment at a time:
//
//	m := map[string]any{
//	    "owner": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "owner.address.city")          // → "London"
//	arr.Set(m, "owner.address.postcode", "EC1")
//	arr.Has(m, "owner.name")                  // → true
//	arr.Forget(m, "owner.address")
//
// A key that exists literally (dots included) always wins over its
// dot-notation interpretation.
package arr
