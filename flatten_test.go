package etdoc_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/reoring/etdoc"
)

func nestedDocument() *etdoc.Document {
	inner := etdoc.NewDocument()
	inner.Set("z", int64(1))
	inner.Set("a", int64(2))
	d := etdoc.NewDocument()
	d.Set("hash", inner)
	d.Set("b", "x")
	return d
}

func TestFlatten_Sorted(t *testing.T) {
	got, err := etdoc.Flatten(nestedDocument(), true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, []etdoc.Pair{
		{Path: "b", Value: "x"},
		{Path: "hash.a", Value: int64(2)},
		{Path: "hash.z", Value: int64(1)},
	}))
}

func TestFlatten_InputOrder(t *testing.T) {
	got, err := etdoc.Flatten(nestedDocument(), false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, []etdoc.Pair{
		{Path: "hash.z", Value: int64(1)},
		{Path: "hash.a", Value: int64(2)},
		{Path: "b", Value: "x"},
	}))
}

func TestFlatten_CollectionsAreLeaves(t *testing.T) {
	got, err := etdoc.Flatten(map[string]any{
		"list":  []any{1, 2},
		"empty": map[string]any{},
	}, true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, []etdoc.Pair{{Path: "list", Value: []any{1, 2}}}))
}

func TestFlatten_TypedMaps(t *testing.T) {
	got, err := etdoc.Flatten(map[string]map[string]int{"m": {"b": 1, "a": 2}}, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, []etdoc.Pair{
		{Path: "m.a", Value: 2},
		{Path: "m.b", Value: 1},
	}))
}

func TestFlatten_InvalidInput(t *testing.T) {
	_, err := etdoc.Flatten([]any{1}, true)
	var ie *etdoc.InvalidInputError
	qt.Assert(t, qt.ErrorAs(err, &ie))
	qt.Assert(t, qt.Equals(ie.Got, "[]interface {}"))
}
