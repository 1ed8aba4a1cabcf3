package frame

import (
	"fmt"
	"strings"
)

// Frame is an ordered collection of columns forming a rectangular dataset.
type Frame struct {
	cols []Column
}

// New assembles a frame from columns in declaration order. Structural
// problems are reported by Check, not here, so a frame can be built
// incrementally before validation.
func New(cols ...Column) *Frame {
	return &Frame{cols: cols}
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// NumRows returns the row count, taken from the first column.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Col returns the column at position i.
func (f *Frame) Col(i int) Column { return f.cols[i] }

// Names returns the column names in declaration order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// InvalidInputError reports a frame that cannot be serialized: duplicate or
// empty column names, ragged column lengths, or nested (list-valued) columns.
// Columns lists the offenders.
type InvalidInputError struct {
	Reason  string
	Columns []string
}

func (e *InvalidInputError) Error() string {
	if len(e.Columns) == 0 {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Reason, strings.Join(e.Columns, ", "))
}

// Check validates the frame before serialization. It fails fast, before any
// coercion or I/O, naming the offending columns.
func (f *Frame) Check() error {
	if len(f.cols) == 0 {
		return &InvalidInputError{Reason: "frame has no columns"}
	}

	var unnamed int
	seen := make(map[string]bool, len(f.cols))
	var dup []string
	for _, c := range f.cols {
		name := c.Name()
		if name == "" {
			unnamed++
			continue
		}
		if seen[name] {
			dup = append(dup, name)
		}
		seen[name] = true
	}
	if unnamed > 0 {
		return &InvalidInputError{Reason: fmt.Sprintf("%d column(s) have no name", unnamed)}
	}
	if len(dup) > 0 {
		return &InvalidInputError{Reason: "duplicate column names", Columns: dup}
	}

	n := f.cols[0].Len()
	var ragged []string
	for _, c := range f.cols {
		if c.Len() != n {
			ragged = append(ragged, c.Name())
		}
	}
	if len(ragged) > 0 {
		return &InvalidInputError{Reason: "column lengths differ", Columns: ragged}
	}

	var nested []string
	for _, c := range f.cols {
		if _, ok := c.(*ListColumn); ok {
			nested = append(nested, c.Name())
		}
	}
	if len(nested) > 0 {
		return &InvalidInputError{Reason: "nested columns are not serializable", Columns: nested}
	}
	return nil
}
