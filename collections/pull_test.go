package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-ng-collection/collections"
)

func TestPullByVal(t *testing.T) {
	c := foos()
	pulled, ok := c.PullByVal("foo", 12)
	if !ok {
		t.Fatal("PullByVal should find foo=12")
	}
	assertItems(t, []rec{pulled}, rec{"foo": 12, "bar": 20.34})
	assertItems(t, c.Items(), rec{"foo": 3, "bar": 15.22}, rec{"foo": 9, "bar": 22.15})
}

func TestPullByValNoMatch(t *testing.T) {
	c := foos()
	pulled, ok := c.PullByVal("bar", 123.45)
	if ok || pulled != nil {
		t.Fatalf("PullByVal = %v, %v; want nil, false", pulled, ok)
	}
	assertItems(t, c.Items(), foos().Items()...)
}

func TestPullByValRemovesAdjacentMatches(t *testing.T) {
	c := collections.New(
		rec{"id": 1, "foo": 1},
		rec{"id": 2, "foo": 1},
		rec{"id": 3, "foo": 2},
		rec{"id": 4, "foo": 1},
	)
	pulled, ok := c.PullByVal("foo", 1)
	if !ok || pulled["id"] != 4 {
		t.Fatalf("PullByVal = %v, %v; want the last match (id 4)", pulled, ok)
	}
	assertItems(t, c.Items(), rec{"id": 3, "foo": 2})
}

func TestPullByValIsStrict(t *testing.T) {
	c := collections.New(rec{"foo": 12}, rec{"foo": "12"}, rec{"foo": 12.0})
	c.PullByVal("foo", "12")
	assertItems(t, c.Items(), rec{"foo": 12}, rec{"foo": 12.0})

	c.PullByVal("foo", int64(12))
	if !c.Empty() {
		t.Fatalf("numbers of different Go kinds should compare by value; left %v", c.Items())
	}
}

func TestPullByValUncomparable(t *testing.T) {
	c := collections.New(rec{"foo": []int{1}}, rec{"foo": 1})
	if _, ok := c.PullByVal("foo", []int{1}); ok {
		t.Fatal("uncomparable values should never match")
	}
	if c.Count() != 2 {
		t.Fatalf("Count = %d; want 2", c.Count())
	}
}

func TestPullByValUncomparableInsideStruct(t *testing.T) {
	type box struct{ V any }
	c := collections.New(rec{"f": box{V: []int{1}}}, rec{"f": box{V: 1}})
	if _, ok := c.PullByVal("f", box{V: []int{1}}); ok {
		t.Fatal("structs holding slices should never match")
	}
	if _, ok := c.PullByVal("f", box{V: 1}); !ok {
		t.Fatal("comparable structs should match by value")
	}
	if c.Count() != 1 {
		t.Fatalf("Count = %d; want 1", c.Count())
	}
}

func TestPullByValNilMatchesOnlyPresentFields(t *testing.T) {
	c := collections.New(rec{"id": 1, "foo": nil}, rec{"id": 2}, rec{"id": 3, "foo": 0})
	pulled, ok := c.PullByVal("foo", nil)
	if !ok || pulled["id"] != 1 {
		t.Fatalf("PullByVal(nil) = %v, %v; want the record holding nil", pulled, ok)
	}
	assertItems(t, c.Items(), rec{"id": 2}, rec{"id": 3, "foo": 0})

	if got := c.PullByVals("foo", []any{nil}); !got.Empty() {
		t.Fatalf("missing fields should not match nil; pulled %v", got.Items())
	}
}

func TestPullByVals(t *testing.T) {
	c := foos()
	pulled := c.PullByVals("foo", []any{12, 9, 10})
	if pulled == c {
		t.Fatal("PullByVals should return a new collection")
	}
	assertItems(t, c.Items(), rec{"foo": 3, "bar": 15.22})
	assertItems(t, pulled.Items(), rec{"foo": 12, "bar": 20.34}, rec{"foo": 9, "bar": 22.15})
}

func TestPullByValsNoMatch(t *testing.T) {
	c := foos()
	pulled := c.PullByVals("bar", []any{123.45, 234.56})
	if pulled == nil || pulled.Count() != 0 {
		t.Fatalf("PullByVals with no match = %v; want an empty collection", pulled)
	}
	assertItems(t, c.Items(), foos().Items()...)

	if got := c.PullByVals("foo", nil); got == nil || !got.Empty() {
		t.Fatal("PullByVals with no values should return an empty collection")
	}
}

func TestPull(t *testing.T) {
	c := foos()

	got := c.Pull("foo", []int{12, 9})
	pulled, ok := got.(*collections.Collection[rec])
	if !ok || pulled.Count() != 2 {
		t.Fatalf("Pull with a slice = %#v; want a collection of 2", got)
	}

	if got := c.Pull("foo", 99); got != nil {
		t.Fatalf("Pull with no match = %v; want nil", got)
	}

	got = c.Pull("foo", 3)
	if r, ok := got.(rec); !ok || r["foo"] != 3 {
		t.Fatalf("Pull with a scalar = %#v; want the record", got)
	}
	if !c.Empty() {
		t.Fatal("collection should be empty after pulling every record")
	}

	if got := collections.Empty[rec]().Pull("foo", []any{}); got.(*collections.Collection[rec]).Count() != 0 {
		t.Fatal("Pull with an empty slice should return an empty collection")
	}
}
