package load

import (
	"testing"

	"github.com/theoremus-urban-solutions/tabwrite/frame"
)

func TestJSONTypedColumns(t *testing.T) {
	doc := []byte(`{
		"columns": [
			{"name": "city", "type": "string", "values": ["Oslo", null]},
			{"name": "temp", "type": "float", "values": [3.5, -1.2]},
			{"name": "count", "type": "int", "values": [4, 5]},
			{"name": "open", "type": "bool", "values": [true, null]},
			{"name": "day", "type": "date", "values": ["2024-06-01", "2024-06-02"]},
			{"name": "seen", "type": "datetime", "values": ["2024-06-01T12:00:00Z", null]}
		]
	}`)
	f, err := JSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Check(); err != nil {
		t.Fatalf("loaded frame fails validation: %v", err)
	}
	if f.NumCols() != 6 || f.NumRows() != 2 {
		t.Fatalf("got %dx%d frame", f.NumRows(), f.NumCols())
	}

	if c, ok := f.Col(0).(*frame.StringColumn); !ok || !c.IsNA(1) {
		t.Error("city should be a string column with a missing second row")
	}
	if c, ok := f.Col(2).(*frame.IntColumn); !ok || c.Values[1] != 5 {
		t.Error("count should be an int column")
	}
	if _, ok := f.Col(5).(*frame.TimeColumn); !ok {
		t.Error("seen should be a datetime column")
	}
}

func TestYAMLInference(t *testing.T) {
	doc := []byte(`
columns:
  - name: n
    values: [1, 2, null]
  - name: x
    values: [1, 2.5]
  - name: flag
    values: [true, false]
  - name: label
    values: [a, b]
`)
	f, err := YAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.Col(0).(*frame.IntColumn); !ok {
		t.Errorf("whole numbers should infer int, got %T", f.Col(0))
	}
	if _, ok := f.Col(1).(*frame.FloatColumn); !ok {
		t.Errorf("mixed int/float should widen to float, got %T", f.Col(1))
	}
	if _, ok := f.Col(2).(*frame.BoolColumn); !ok {
		t.Errorf("expected bool column, got %T", f.Col(2))
	}
	if _, ok := f.Col(3).(*frame.StringColumn); !ok {
		t.Errorf("expected string column, got %T", f.Col(3))
	}
}

func TestFactorColumn(t *testing.T) {
	doc := []byte(`{
		"columns": [
			{"name": "grade", "type": "factor", "values": ["low", "high", null, "low"]}
		]
	}`)
	f, err := JSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := f.Col(0).(*frame.FactorColumn)
	if !ok {
		t.Fatalf("expected factor column, got %T", f.Col(0))
	}
	if len(c.Labels) != 2 {
		t.Errorf("labels = %v", c.Labels)
	}
	if !c.IsNA(2) {
		t.Error("null should be a missing code")
	}
	if c.Value(3) != "low" {
		t.Errorf("Value(3) = %v", c.Value(3))
	}
}

func TestFactorRejectsUndeclaredLabel(t *testing.T) {
	doc := []byte(`{
		"columns": [
			{"name": "g", "type": "factor", "labels": ["a"], "values": ["b"]}
		]
	}`)
	if _, err := JSON(doc); err == nil {
		t.Fatal("expected an error for a label outside the declared set")
	}
}

func TestTypeMismatchErrors(t *testing.T) {
	doc := []byte(`{"columns": [{"name": "n", "type": "int", "values": [1.5]}]}`)
	if _, err := JSON(doc); err == nil {
		t.Fatal("1.5 must not load into an int column")
	}
}

func TestEmptyDocument(t *testing.T) {
	if _, err := JSON([]byte(`{}`)); err == nil {
		t.Fatal("expected an error for a dataset with no columns")
	}
}
