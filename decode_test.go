package etdoc_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-quicktest/qt"

	"github.com/reoring/etdoc"
)

const sampleDocument = `# Gas-fired power plant.
# Values from the 2023 survey.
- unit = MWh
- efficiency = 0.42
- lifetime = 25
- costs.per_unit = 1200
- costs.fixed = 35.5
- carriers = [gas, electricity]

~ demand = SUM(1,2)
~ supply =
    SUM(
      V(a, demand),
      V(b, demand)
    )

~ other = 1
`

func TestDecode_Document(t *testing.T) {
	doc, err := etdoc.Decode(sampleDocument)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.DeepEquals(doc.Map(), map[string]any{
		"description": "Gas-fired power plant.\nValues from the 2023 survey.",
		"unit":        "MWh",
		"efficiency":  0.42,
		"lifetime":    int64(25),
		"costs": map[string]any{
			"per_unit": int64(1200),
			"fixed":    35.5,
		},
		"carriers": []any{"gas", "electricity"},
		"queries": map[string]any{
			"demand": "SUM(1,2)",
			"supply": "SUM(\n  V(a, demand),\n  V(b, demand)\n)",
			"other":  "1",
		},
	}))
	qt.Assert(t, qt.DeepEquals(doc.Keys(), []string{"description", "unit", "efficiency", "lifetime", "costs", "carriers", "queries"}))
	qt.Assert(t, qt.DeepEquals(doc.Queries().Keys(), []string{"demand", "supply", "other"}))
}

func TestDecode_ScalarCoercion(t *testing.T) {
	tests := []struct {
		text string
		want any
	}{
		{"- v = ", ""},
		{"- v =", ""},
		{"- v = 42", int64(42)},
		{"- v = -7", int64(-7)},
		{"- v = 3.25", 3.25},
		{"- v = -0.5", -0.5},
		{"- v = 1.", "1."},
		{"- v = .5", ".5"},
		{"- v = 1e3", "1e3"},
		{"- v = kg", "kg"},
		{"- v = Hello World  ", "Hello World"},
		{"- v = true", "true"},
		{"- v = []", []any{}},
		{"- v = [1, 2.5, x]", []any{int64(1), 2.5, "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			doc, err := etdoc.Decode(tt.text)
			qt.Assert(t, qt.IsNil(err))
			got, ok := doc.Get("v")
			qt.Assert(t, qt.IsTrue(ok))
			qt.Assert(t, qt.DeepEquals(got, tt.want))
		})
	}
}

func TestDecode_IntegerOverflowIsDecimal(t *testing.T) {
	doc, err := etdoc.Decode("- big = 123456789012345678901234567890")
	qt.Assert(t, qt.IsNil(err))
	v, _ := doc.Get("big")
	d, ok := v.(*apd.Decimal)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(d.Text('f'), "123456789012345678901234567890"))
}

func TestDecode_NumberDecimal(t *testing.T) {
	doc, err := etdoc.Decode("- share = 1.50\n- count = 3", etdoc.DecodeOpt{Numbers: etdoc.NumberDecimal})
	qt.Assert(t, qt.IsNil(err))
	v, _ := doc.Get("share")
	d, ok := v.(*apd.Decimal)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(d.Text('f'), "1.50"))
	n, _ := doc.Get("count")
	qt.Assert(t, qt.Equals[any](n, int64(3)))
}

func TestDecode_MultiLineAttribute(t *testing.T) {
	doc, err := etdoc.Decode("- message =\n  This\n\n    is\n  OK\n\n- next = 1")
	qt.Assert(t, qt.IsNil(err))
	v, _ := doc.Get("message")
	qt.Assert(t, qt.Equals[any](v, "This\n\n  is\nOK"))
	n, _ := doc.Get("next")
	qt.Assert(t, qt.Equals[any](n, int64(1)))
}

func TestDecode_MultiLineValueIsNotCoerced(t *testing.T) {
	doc, err := etdoc.Decode("- number =\n  42")
	qt.Assert(t, qt.IsNil(err))
	v, _ := doc.Get("number")
	qt.Assert(t, qt.Equals[any](v, "42"))
}

func TestDecode_QueriesKeepTextAndFirstPosition(t *testing.T) {
	doc, err := etdoc.Decode("~ a = 1\n~ b = 2.5\n~ a = 3")
	qt.Assert(t, qt.IsNil(err))
	q := doc.Queries()
	qt.Assert(t, qt.DeepEquals(q.Keys(), []string{"a", "b"}))
	a, _ := q.Get("a")
	b, _ := q.Get("b")
	qt.Assert(t, qt.Equals[any](a, "3"))
	qt.Assert(t, qt.Equals[any](b, "2.5"))
}

func TestDecode_LaterAttributeOverwrites(t *testing.T) {
	doc, err := etdoc.Decode("- a = 1\n- b = 2\n- a = 3")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(doc.Keys(), []string{"a", "b"}))
	a, _ := doc.Get("a")
	qt.Assert(t, qt.Equals[any](a, int64(3)))
}

func TestDecode_DottedPathReplacesScalar(t *testing.T) {
	doc, err := etdoc.Decode("- a = 1\n- a.b = 2")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(doc.Map(), map[string]any{"a": map[string]any{"b": int64(2)}}))
}

func TestDecode_DisjointCommentsAreJoined(t *testing.T) {
	doc, err := etdoc.Decode("# one\n- a = 1\n# two\n#\n# three")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(doc.Description(), "one\ntwo\n\nthree"))
}

func TestDecode_CRLF(t *testing.T) {
	lf, err := etdoc.Decode("# c\n- a = 1\n~ q =\n  x\n")
	qt.Assert(t, qt.IsNil(err))
	crlf, err := etdoc.Decode("# c\r\n- a = 1\r\n~ q =\r\n  x\r\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(crlf.Map(), lf.Map()))
}

func TestDecode_Empty(t *testing.T) {
	doc, err := etdoc.Decode("")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(doc.Len(), 0))
}

func TestDecode_CannotIdentify(t *testing.T) {
	_, err := etdoc.Decode("- a = 1\nnot a line")
	var ce *etdoc.CannotIdentifyError
	qt.Assert(t, qt.ErrorAs(err, &ce))
	qt.Assert(t, qt.Equals(ce.Line, 2))
	qt.Assert(t, qt.Equals(ce.Content, "not a line"))
}

func TestDecode_InlineValueBeforeContinuation(t *testing.T) {
	_, err := etdoc.Decode("~ demand = SUM(\n  1,\n  2\n  )")
	var pe *etdoc.ParserError
	qt.Assert(t, qt.ErrorAs(err, &pe))
	qt.Assert(t, qt.Equals(pe.Key, "demand"))
}

func TestDecode_Idempotent(t *testing.T) {
	a, err := etdoc.Decode(sampleDocument)
	qt.Assert(t, qt.IsNil(err))
	b, err := etdoc.Decode(sampleDocument)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(a.Map(), b.Map()))
}

func TestClassify_Examples(t *testing.T) {
	tests := []struct {
		content string
		want    etdoc.LineKind
	}{
		{"# comment", etdoc.LineComment},
		{"- unit = kg", etdoc.LineStaticAttribute},
		{"~ demand =", etdoc.LineDynamicQuery},
		{"  SUM(1,2)", etdoc.LineContinuation},
		{"", etdoc.LineEmpty},
	}
	for _, tt := range tests {
		got, err := etdoc.Classify(tt.content)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, tt.want))
	}

	_, err := etdoc.Classify("unparseable")
	var ce *etdoc.CannotIdentifyError
	qt.Assert(t, qt.ErrorAs(err, &ce))
}
