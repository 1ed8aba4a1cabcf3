// Package tabwrite serializes rectangular in-memory datasets to delimited
// text: CSV, TSV, semicolon dialects, or any single-character delimiter.
//
// The entry points differ only in their dialect defaults. Write uses a space
// delimiter, WriteCSV a comma, WriteCSV2 a semicolon with a comma decimal
// mark, WriteTSV a tab. The Excel variants force quoting of every value,
// emit a UTF-8 byte-order mark on fresh output, and format datetimes as
// local wall-clock text. Format counterparts return the text instead of
// writing it.
//
// Destinations ending in .gz, .bz2 or .xz are compressed transparently.
// Output is always UTF-8. A failed write may leave a partial file behind;
// nothing is rolled back.
package tabwrite

import (
	"io"

	"github.com/theoremus-urban-solutions/tabwrite/frame"
	"github.com/theoremus-urban-solutions/tabwrite/sink"
)

// Write serializes f to path using a space delimiter.
func Write(f *frame.Frame, path string, opt Options) error {
	_, err := run(f, dialectDelim, sink.Spec{Path: path}, opt, false)
	return err
}

// WriteCSV serializes f to path as comma-separated values.
func WriteCSV(f *frame.Frame, path string, opt Options) error {
	_, err := run(f, dialectCSV, sink.Spec{Path: path}, opt, false)
	return err
}

// WriteCSV2 serializes f to path with a semicolon delimiter and a comma
// decimal mark, the convention of comma-decimal locales.
func WriteCSV2(f *frame.Frame, path string, opt Options) error {
	_, err := run(f, dialectCSV2, sink.Spec{Path: path}, opt, false)
	return err
}

// WriteTSV serializes f to path as tab-separated values.
func WriteTSV(f *frame.Frame, path string, opt Options) error {
	_, err := run(f, dialectTSV, sink.Spec{Path: path}, opt, false)
	return err
}

// WriteExcelCSV serializes f to path as Excel-oriented CSV: every value
// quoted and a byte-order mark on fresh output.
func WriteExcelCSV(f *frame.Frame, path string, opt Options) error {
	_, err := run(f, dialectExcelCSV, sink.Spec{Path: path}, opt, false)
	return err
}

// WriteExcelCSV2 is WriteExcelCSV with the semicolon/comma-decimal dialect.
func WriteExcelCSV2(f *frame.Frame, path string, opt Options) error {
	_, err := run(f, dialectExcelCSV2, sink.Spec{Path: path}, opt, false)
	return err
}

// WriteTo serializes f as CSV into an already-open writer. The writer is
// neither closed nor repositioned.
func WriteTo(f *frame.Frame, w io.Writer, opt Options) error {
	_, err := run(f, dialectCSV, sink.Spec{Stream: w}, opt, false)
	return err
}

// Format returns f serialized with a space delimiter.
func Format(f *frame.Frame, opt Options) (string, error) {
	return run(f, dialectDelim, sink.Spec{}, opt, true)
}

// FormatCSV returns f as comma-separated text.
func FormatCSV(f *frame.Frame, opt Options) (string, error) {
	return run(f, dialectCSV, sink.Spec{}, opt, true)
}

// FormatCSV2 returns f in the semicolon/comma-decimal dialect.
func FormatCSV2(f *frame.Frame, opt Options) (string, error) {
	return run(f, dialectCSV2, sink.Spec{}, opt, true)
}

// FormatTSV returns f as tab-separated text.
func FormatTSV(f *frame.Frame, opt Options) (string, error) {
	return run(f, dialectTSV, sink.Spec{}, opt, true)
}

// FormatExcelCSV returns f in the Excel-oriented CSV dialect.
func FormatExcelCSV(f *frame.Frame, opt Options) (string, error) {
	return run(f, dialectExcelCSV, sink.Spec{}, opt, true)
}

// FormatExcelCSV2 returns f in the Excel-oriented semicolon dialect.
func FormatExcelCSV2(f *frame.Frame, opt Options) (string, error) {
	return run(f, dialectExcelCSV2, sink.Spec{}, opt, true)
}
