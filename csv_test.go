package etdoc_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/reoring/etdoc"
)

func TestEncodeCSV(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{{
		name: "InputOrder",
		in:   nestedDocument(),
		want: "hash.z,1\nhash.a,2\nb,x",
	}, {
		name: "MapKeyOrder",
		in:   map[string]any{"hash": map[string]any{"z": 1, "a": 2}},
		want: "hash.a,2\nhash.z,1",
	}, {
		name: "ReservedKeysAreOrdinary",
		in: func() *etdoc.Document {
			q := etdoc.NewDocument()
			q.Set("demand", "SUM(1,2)")
			d := etdoc.NewDocument()
			d.Set("description", "text")
			d.Set("queries", q)
			return d
		}(),
		want: "description,text\nqueries.demand,SUM(1,2)",
	}, {
		name: "Collections",
		in:   map[string]any{"l": []any{"a", 1.5}},
		want: "l,[a, 1.5]",
	}, {
		name: "Empty",
		in:   map[string]any{},
		want: "",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := etdoc.EncodeCSV(tt.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, tt.want))
		})
	}
}

func TestEncodeCSV_Errors(t *testing.T) {
	_, err := etdoc.EncodeCSV("scalar")
	var ie *etdoc.InvalidInputError
	qt.Assert(t, qt.ErrorAs(err, &ie))

	_, err = etdoc.EncodeCSV(map[string]any{"a": []any{map[string]any{"b": 1}}})
	var ne *etdoc.IllegalNestedHashError
	qt.Assert(t, qt.ErrorAs(err, &ne))
}
