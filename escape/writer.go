package escape

import (
	"bufio"
	"io"
)

// Writer emits delimited rows through a Policy over a buffered writer.
type Writer struct {
	dst *bufio.Writer
	pol Policy
}

// NewWriter wraps w. The caller must Flush before inspecting the output.
func NewWriter(w io.Writer, pol Policy) *Writer {
	return &Writer{dst: bufio.NewWriterSize(w, 64*1024), pol: pol}
}

// WriteRow emits one row: cells joined by the delimiter, terminated by the
// configured line terminator. missing may be nil (header rows).
func (w *Writer) WriteRow(cells []string, missing []bool) error {
	for i, cell := range cells {
		if i > 0 {
			if err := w.dst.WriteByte(w.pol.Delimiter); err != nil {
				return err
			}
		}
		na := missing != nil && missing[i]
		if _, err := w.dst.WriteString(w.pol.Field(cell, na)); err != nil {
			return err
		}
	}
	_, err := w.dst.WriteString(w.pol.EOL)
	return err
}

// Flush drains buffered bytes to the underlying writer.
func (w *Writer) Flush() error {
	return w.dst.Flush()
}
