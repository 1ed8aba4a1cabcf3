package frame

import "time"

// Column is one named, typed sequence of cells. Len is the row count, IsNA
// reports whether row i is missing, and Value returns the cell as a plain Go
// value (nil when missing). The concrete type decides how the coerce package
// renders the column.
type Column interface {
	Name() string
	Len() int
	IsNA(i int) bool
	Value(i int) any
}

// StringColumn holds textual cells.
type StringColumn struct {
	ColName string
	Values  []string
	NA      []bool
}

func (c *StringColumn) Name() string { return c.ColName }
func (c *StringColumn) Len() int     { return len(c.Values) }
func (c *StringColumn) IsNA(i int) bool {
	return i < len(c.NA) && c.NA[i]
}
func (c *StringColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Values[i]
}

// FloatColumn holds double-precision cells. NaN entries count as missing in
// addition to the NA mask.
type FloatColumn struct {
	ColName string
	Values  []float64
	NA      []bool
}

func (c *FloatColumn) Name() string { return c.ColName }
func (c *FloatColumn) Len() int     { return len(c.Values) }
func (c *FloatColumn) IsNA(i int) bool {
	if i < len(c.NA) && c.NA[i] {
		return true
	}
	return c.Values[i] != c.Values[i] // NaN
}
func (c *FloatColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Values[i]
}

// IntColumn holds integer cells.
type IntColumn struct {
	ColName string
	Values  []int64
	NA      []bool
}

func (c *IntColumn) Name() string    { return c.ColName }
func (c *IntColumn) Len() int        { return len(c.Values) }
func (c *IntColumn) IsNA(i int) bool { return i < len(c.NA) && c.NA[i] }
func (c *IntColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Values[i]
}

// BoolColumn holds logical cells.
type BoolColumn struct {
	ColName string
	Values  []bool
	NA      []bool
}

func (c *BoolColumn) Name() string    { return c.ColName }
func (c *BoolColumn) Len() int        { return len(c.Values) }
func (c *BoolColumn) IsNA(i int) bool { return i < len(c.NA) && c.NA[i] }
func (c *BoolColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Values[i]
}

// FactorColumn holds categorical cells as indexes into Labels. A negative or
// out-of-range code is missing.
type FactorColumn struct {
	ColName string
	Codes   []int
	Labels  []string
}

func (c *FactorColumn) Name() string { return c.ColName }
func (c *FactorColumn) Len() int     { return len(c.Codes) }
func (c *FactorColumn) IsNA(i int) bool {
	code := c.Codes[i]
	return code < 0 || code >= len(c.Labels)
}
func (c *FactorColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Labels[c.Codes[i]]
}

// DateColumn holds civil dates. Only the year/month/day of each value is
// meaningful.
type DateColumn struct {
	ColName string
	Values  []time.Time
	NA      []bool
}

func (c *DateColumn) Name() string    { return c.ColName }
func (c *DateColumn) Len() int        { return len(c.Values) }
func (c *DateColumn) IsNA(i int) bool { return i < len(c.NA) && c.NA[i] }
func (c *DateColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Values[i]
}

// TimeColumn holds instants, each carrying its own zone.
type TimeColumn struct {
	ColName string
	Values  []time.Time
	NA      []bool
}

func (c *TimeColumn) Name() string    { return c.ColName }
func (c *TimeColumn) Len() int        { return len(c.Values) }
func (c *TimeColumn) IsNA(i int) bool { return i < len(c.NA) && c.NA[i] }
func (c *TimeColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Values[i]
}

// VerbatimColumn holds pre-rendered text that is exempt from coercion and
// emitted exactly as stored.
type VerbatimColumn struct {
	ColName string
	Values  []string
	NA      []bool
}

func (c *VerbatimColumn) Name() string    { return c.ColName }
func (c *VerbatimColumn) Len() int        { return len(c.Values) }
func (c *VerbatimColumn) IsNA(i int) bool { return i < len(c.NA) && c.NA[i] }
func (c *VerbatimColumn) Value(i int) any {
	if c.IsNA(i) {
		return nil
	}
	return c.Values[i]
}

// AnyColumn holds opaque values rendered through the generic display-text
// fallback. A nil value is missing.
type AnyColumn struct {
	ColName string
	Values  []any
}

func (c *AnyColumn) Name() string    { return c.ColName }
func (c *AnyColumn) Len() int        { return len(c.Values) }
func (c *AnyColumn) IsNA(i int) bool { return c.Values[i] == nil }
func (c *AnyColumn) Value(i int) any { return c.Values[i] }

// ListColumn holds nested cells. Frames containing list columns are rejected
// by Check before any coercion happens.
type ListColumn struct {
	ColName string
	Values  [][]any
}

func (c *ListColumn) Name() string    { return c.ColName }
func (c *ListColumn) Len() int        { return len(c.Values) }
func (c *ListColumn) IsNA(i int) bool { return c.Values[i] == nil }
func (c *ListColumn) Value(i int) any {
	if c.Values[i] == nil {
		return nil
	}
	return c.Values[i]
}
