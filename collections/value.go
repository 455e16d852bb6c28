package collections

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"

	"github.com/hasbyte1/go-ng-collection/arr"
)

// Record is the canonical record representation: an open-ended mapping of
// field names to values, as produced by decoding a JSON object.
type Record = map[string]any

// FieldValue resolves field on item and returns the value, or nil when the
// item has no such field.
//
// Resolution rules:
//   - map[string]any (and [Record]): dot-notation lookup via [arr.Lookup], so
//     "owner.name" reaches into nested maps. A literal key wins.
//   - other maps keyed by string: direct key lookup.
//   - structs and pointers to structs: the exported field whose Go name or
//     json tag name equals field.
//   - anything else: nil.
func FieldValue(item any, field string) any {
	v, _ := LookupField(item, field)
	return v
}

// LookupField is like [FieldValue] but also reports whether the field is
// present, so a field holding nil can be told apart from a missing one.
func LookupField(item any, field string) (any, bool) {
	if rec, ok := item.(map[string]any); ok {
		return arr.Lookup(rec, field)
	}
	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		return structField(rv, field)
	}
	return nil, false
}

func structField(rv reflect.Value, field string) (any, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if sf.Name == field || (name != "" && name != "-" && name == field) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// numberOf reports the value of v when v is a Go numeric kind.
// Strings are not numbers here; see toNumber and finiteNumber.
func numberOf(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

var leadingFloat = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// toNumber returns the numeric interpretation of v. Numbers convert
// directly; strings (including json.Number) yield their longest leading
// decimal literal, so "12abc" is 12 and "abc" is NaN. Every other value is
// NaN.
func toNumber(v any) float64 {
	if f, ok := numberOf(v); ok {
		return f
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return math.NaN()
	}
	s := strings.TrimLeftFunc(rv.String(), unicode.IsSpace)
	lit := leadingFloat.FindString(s)
	switch strings.TrimLeft(lit, "+-") {
	case "":
		return math.NaN()
	case "Infinity":
		if strings.HasPrefix(lit, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// parseNumber converts a whole string to a number: surrounding spaces are
// ignored, "" is 0, and anything else that is not a decimal literal or
// Infinity is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if leadingFloat.FindString(s) != s {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// isPositive reports whether v converts, as a whole, to a number strictly
// greater than zero. Strings follow parseNumber, so " 4" is 4.
func isPositive(v any) bool {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return parseNumber(rv.String()) > 0
	}
	f, err := cast.ToFloat64E(v)
	return err == nil && f > 0
}

// finiteNumber reports the value of v when v is a finite number or a string
// that parses entirely as one.
func finiteNumber(v any) (float64, bool) {
	f, ok := numberOf(v)
	if !ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.String {
			return 0, false
		}
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Keys of fields that hold nil or are missing altogether.
const (
	nullKey    = "null"
	missingKey = "undefined"
)

// keyOf returns the distinct-value key of v: 12 → "12", 20.34 → "20.34",
// true → "true", nil → "null".
func keyOf(v any) string {
	if v == nil {
		return nullKey
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// fieldKey returns the distinct-value key of field on item, or
// "undefined" when the item has no such field.
func fieldKey(item any, field string) string {
	v, ok := LookupField(item, field)
	if !ok {
		return missingKey
	}
	return keyOf(v)
}

// isBlank reports whether v counts as empty for excludeEmpty: the empty
// string, a numeric zero, false, or an empty slice. nil and missing values
// are not blank; they have their own keys.
func isBlank(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		if _, ok := v.(json.Number); ok {
			return parseNumber(rv.String()) == 0
		}
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}
	f, ok := numberOf(v)
	return ok && f == 0
}

// strictEqual compares two field values without coercion. Numbers of any
// Go kind compare by value, so int 12 equals float64 12. Non-numbers must
// share a dynamic type and hold comparable values.
func strictEqual(a, b any) bool {
	fa, aNum := numberOf(a)
	fb, bNum := numberOf(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// sortKey is the tagged comparison value used by SortBy: numeric when the
// value is a finite number, otherwise the lowercased string form.
type sortKey struct {
	numeric bool
	num     float64
	str     string
}

func sortKeyOf(v any, lower cases.Caser) sortKey {
	if f, ok := finiteNumber(v); ok {
		return sortKey{numeric: true, num: f}
	}
	return sortKey{str: lower.String(keyOf(v))}
}

// compareKeys orders two sort keys. A number and a string compare as equal.
func compareKeys(a, b sortKey) int {
	switch {
	case a.numeric && b.numeric:
		return cmp.Compare(a.num, b.num)
	case !a.numeric && !b.numeric:
		return strings.Compare(a.str, b.str)
	}
	return 0
}
