// Package escape decides how one cell of text is quoted and escaped.
//
// A Policy combines the delimiter, line terminator, NA string, quote mode,
// and escape mode. Under QuoteNeeded a cell is quoted only when it contains
// the delimiter, a double quote, a line-terminator byte, or equals the NA
// string (disambiguating a literal value from a true missing entry). Missing
// markers are always emitted verbatim, unquoted and unescaped.
//
// QuoteNone passes embedded delimiters and newlines through untouched; the
// output may not split back into the same columns on read. That is the
// documented behavior of the mode, not something this package repairs.
package escape
