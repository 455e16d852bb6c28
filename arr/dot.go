package arr

import "strings"

// Lookup retrieves the value stored in m under key and reports whether it
// was present. The literal key is tried first; otherwise key is split on
// "." and resolved through nested map[string]any values.
//
//	Lookup(m, "owner.address.city")  // "London", true
//	Lookup(m, "owner.missing")       // nil, false
func Lookup(m map[string]any, key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if val, ok := m[key]; ok {
		return val, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}
	current := m
	segments := strings.Split(key, ".")
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "owner.address.city")        // "London"
//	Get(m, "owner.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if val, ok := Lookup(m, key); ok {
		return val
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Lookup(m, key)
	return ok
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. An existing literal key is overwritten in place.
//
//	Set(m, "owner.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	if _, ok := m[key]; ok {
		m[key] = value
		return
	}
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		m[key] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	Set(nested, rest, value)
}

// Forget removes the dot-notation key from m.
// Intermediate maps are not cleaned up.
func Forget(m map[string]any, key string) {
	if _, ok := m[key]; ok {
		delete(m, key)
		return
	}
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		return
	}
	nested, ok := m[segments[0]].(map[string]any)
	if !ok {
		return
	}
	Forget(nested, segments[1])
}
