package coerce

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/tabwrite/frame"
)

// ISO-8601 with a Z designator; the fractional part is dropped when zero.
const (
	utcInstantLayout   = "2006-01-02T15:04:05.999999999Z07:00"
	civilDateLayout    = "2006-01-02"
	excelInstantLayout = "2006-01-02 15:04:05"
)

// Options controls how columns are rendered.
type Options struct {
	// Threads is the worker count for parallel coercion; 0 picks GOMAXPROCS.
	Threads int
	// ExcelDatetime reformats datetime columns as local wall-clock text
	// (YYYY-MM-DD HH:MM:SS, no zone) for Excel-oriented dialects.
	ExcelDatetime bool
}

// Result is the rendered text of one column. Text and NA run parallel to the
// source rows; Numeric marks columns whose text is eligible for the decimal
// mark rewrite.
type Result struct {
	Text    []string
	NA      []bool
	Numeric bool
}

// Column renders a single column. It is a pure function over the column.
func Column(col frame.Column, opt Options) Result {
	n := col.Len()
	res := Result{Text: make([]string, n), NA: make([]bool, n)}

	switch c := col.(type) {
	case *frame.StringColumn:
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			res.Text[i] = c.Values[i]
		}
	case *frame.FloatColumn:
		res.Numeric = true
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			res.Text[i] = formatFloat(c.Values[i])
		}
	case *frame.IntColumn:
		res.Numeric = true
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			res.Text[i] = strconv.FormatInt(c.Values[i], 10)
		}
	case *frame.BoolColumn:
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			if c.Values[i] {
				res.Text[i] = "TRUE"
			} else {
				res.Text[i] = "FALSE"
			}
		}
	case *frame.FactorColumn:
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			res.Text[i] = c.Labels[c.Codes[i]]
		}
	case *frame.DateColumn:
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			res.Text[i] = c.Values[i].Format(civilDateLayout)
		}
	case *frame.TimeColumn:
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			res.Text[i] = formatInstant(c.Values[i], opt.ExcelDatetime)
		}
	case *frame.VerbatimColumn:
		for i := 0; i < n; i++ {
			if c.IsNA(i) {
				res.NA[i] = true
				continue
			}
			res.Text[i] = c.Values[i]
		}
	default:
		// Opaque columns and anything unrecognized: generic display text.
		for i := 0; i < n; i++ {
			v := col.Value(i)
			if v == nil {
				res.NA[i] = true
				continue
			}
			res.Text[i] = fmt.Sprint(v)
		}
	}
	return res
}

// formatFloat produces the shortest decimal text that re-parses to the exact
// binary value (0.1+0.2 renders as 0.30000000000000004, not 0.3).
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInstant(t time.Time, excel bool) string {
	if excel {
		return t.Format(excelInstantLayout)
	}
	return t.UTC().Format(utcInstantLayout)
}
