// Package collections provides Collection, a small mutable wrapper around an
// ordered slice of records with grouping, aggregation, sorting, filtering
// and extraction keyed by field name.
//
// # Overview
//
// Records are usually [Record] values (map[string]any, as decoded from a
// JSON object), but any item type works: fields are resolved at call time
// by [FieldValue], which also understands struct fields and json tags.
//
//	c := collections.New(
//	    collections.Record{"animal": "dog", "age": 3},
//	    collections.Record{"animal": "cat", "age": 6},
//	    collections.Record{"animal": "dog", "age": 9},
//	)
//	c.AverageBy("age", false)              // 6
//	c.CountBy("animal", false).Get("dog")  // 2, true
//	c.SortBy("animal").First()             // the cat
//
// # Mutation
//
// Push, Filter, SortBy, Transform and the Pull operations change the
// receiver in place and return it for chaining. Subset and GroupBy return
// new collections. Items returns the live backing slice rather than a copy.
//
// # Edge cases
//
// Nothing in this package panics or returns an error on unusual data:
//   - empty collections sum and average to 0; Max and Min return -Inf and
//     +Inf (use MaxOK and MinOK for an explicit "no data" result);
//   - values that are not numbers make SumBy, Max and Min return NaN;
//   - a field holding nil has the distinct-value key "null" and a missing
//     field the key "undefined";
//   - PullByVal reports false when nothing matched, and PullByVals returns
//     an empty collection.
package collections
