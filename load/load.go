package load

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/tabwrite/frame"
)

type columnDoc struct {
	Name   string   `json:"name" yaml:"name"`
	Type   string   `json:"type" yaml:"type"`
	Values []any    `json:"values" yaml:"values"`
	Labels []string `json:"labels" yaml:"labels"`
}

type document struct {
	Columns []columnDoc `json:"columns" yaml:"columns"`
}

// File reads a dataset document, choosing the parser by extension
// (.json, .yml, .yaml).
func File(path string) (*frame.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON(data)
	case ".yml", ".yaml":
		return YAML(data)
	}
	return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
}

// JSON builds a frame from a JSON dataset document.
func JSON(data []byte) (*frame.Frame, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return build(doc)
}

// YAML builds a frame from a YAML dataset document.
func YAML(data []byte) (*frame.Frame, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return build(doc)
}

func build(doc document) (*frame.Frame, error) {
	if len(doc.Columns) == 0 {
		return nil, fmt.Errorf("dataset has no columns")
	}
	cols := make([]frame.Column, 0, len(doc.Columns))
	for _, cd := range doc.Columns {
		col, err := buildColumn(cd)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cd.Name, err)
		}
		cols = append(cols, col)
	}
	return frame.New(cols...), nil
}

func buildColumn(cd columnDoc) (frame.Column, error) {
	typ := cd.Type
	if typ == "" {
		typ = inferType(cd.Values)
	}
	n := len(cd.Values)
	na := make([]bool, n)

	switch typ {
	case "string":
		vals := make([]string, n)
		for i, v := range cd.Values {
			if v == nil {
				na[i] = true
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("row %d: expected string, got %T", i, v)
			}
			vals[i] = s
		}
		return &frame.StringColumn{ColName: cd.Name, Values: vals, NA: na}, nil

	case "verbatim":
		vals := make([]string, n)
		for i, v := range cd.Values {
			if v == nil {
				na[i] = true
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("row %d: expected string, got %T", i, v)
			}
			vals[i] = s
		}
		return &frame.VerbatimColumn{ColName: cd.Name, Values: vals, NA: na}, nil

	case "float":
		vals := make([]float64, n)
		for i, v := range cd.Values {
			if v == nil {
				na[i] = true
				continue
			}
			f, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("row %d: expected number, got %T", i, v)
			}
			vals[i] = f
		}
		return &frame.FloatColumn{ColName: cd.Name, Values: vals, NA: na}, nil

	case "int":
		vals := make([]int64, n)
		for i, v := range cd.Values {
			if v == nil {
				na[i] = true
				continue
			}
			iv, ok := toInt(v)
			if !ok {
				return nil, fmt.Errorf("row %d: expected integer, got %v", i, v)
			}
			vals[i] = iv
		}
		return &frame.IntColumn{ColName: cd.Name, Values: vals, NA: na}, nil

	case "bool":
		vals := make([]bool, n)
		for i, v := range cd.Values {
			if v == nil {
				na[i] = true
				continue
			}
			b, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("row %d: expected bool, got %T", i, v)
			}
			vals[i] = b
		}
		return &frame.BoolColumn{ColName: cd.Name, Values: vals, NA: na}, nil

	case "factor":
		labels := cd.Labels
		index := make(map[string]int, len(labels))
		for i, l := range labels {
			index[l] = i
		}
		codes := make([]int, n)
		for i, v := range cd.Values {
			if v == nil {
				codes[i] = -1
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("row %d: expected label, got %T", i, v)
			}
			code, ok := index[s]
			if !ok {
				if len(cd.Labels) > 0 {
					return nil, fmt.Errorf("row %d: label %q not in declared labels", i, s)
				}
				code = len(labels)
				labels = append(labels, s)
				index[s] = code
			}
			codes[i] = code
		}
		return &frame.FactorColumn{ColName: cd.Name, Codes: codes, Labels: labels}, nil

	case "date":
		vals := make([]time.Time, n)
		for i, v := range cd.Values {
			if v == nil {
				na[i] = true
				continue
			}
			t, err := parseTemporal(v, "2006-01-02")
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			vals[i] = t
		}
		return &frame.DateColumn{ColName: cd.Name, Values: vals, NA: na}, nil

	case "datetime":
		vals := make([]time.Time, n)
		for i, v := range cd.Values {
			if v == nil {
				na[i] = true
				continue
			}
			t, err := parseTemporal(v, time.RFC3339Nano)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			vals[i] = t
		}
		return &frame.TimeColumn{ColName: cd.Name, Values: vals, NA: na}, nil

	case "any":
		return &frame.AnyColumn{ColName: cd.Name, Values: cd.Values}, nil
	}
	return nil, fmt.Errorf("unknown column type %q", typ)
}

// inferType guesses a column type from its values: whole numbers become int,
// int widens to float, and mixed or unrecognized values fall back to the
// opaque column.
func inferType(values []any) string {
	typ := ""
	for _, v := range values {
		if v == nil {
			continue
		}
		var next string
		switch t := v.(type) {
		case bool:
			next = "bool"
		case string:
			next = "string"
		case int, int64, uint64:
			next = "int"
		case float64:
			if t == math.Trunc(t) && !math.IsInf(t, 0) {
				next = "int"
			} else {
				next = "float"
			}
		default:
			return "any"
		}
		switch {
		case typ == "" || typ == next:
			typ = next
		case typ == "int" && next == "float", typ == "float" && next == "int":
			typ = "float"
		default:
			return "any"
		}
	}
	if typ == "" {
		return "string"
	}
	return typ
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case uint64:
		return int64(t), true
	case float64:
		if t == math.Trunc(t) {
			return int64(t), true
		}
	}
	return 0, false
}

func parseTemporal(v any, layout string) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("expected %s string, got %T", layout, v)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
