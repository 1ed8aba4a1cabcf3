package escape

import (
	"errors"
	"fmt"
	"strings"
)

// QuoteMode selects when a cell is wrapped in double quotes.
type QuoteMode int

const (
	QuoteNeeded QuoteMode = iota // quote only when the content requires it
	QuoteAll                     // quote every non-missing cell
	QuoteNone                    // never quote
)

// EscapeMode selects how quote characters inside a cell are protected.
type EscapeMode int

const (
	EscapeDouble    EscapeMode = iota // "" doubling inside quoted cells
	EscapeBackslash                   // backslash-prefix special characters
	EscapeNone                        // no in-value escaping
)

var (
	ErrUnknownQuoteMode  = errors.New("unknown quote mode")
	ErrUnknownEscapeMode = errors.New("unknown escape mode")
)

// ParseQuoteMode resolves a mode token. Unknown tokens fail before any work
// is performed.
func ParseQuoteMode(s string) (QuoteMode, error) {
	switch s {
	case "", "needed":
		return QuoteNeeded, nil
	case "all":
		return QuoteAll, nil
	case "none":
		return QuoteNone, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownQuoteMode, s)
}

// ParseEscapeMode resolves an escape token.
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch s {
	case "", "double":
		return EscapeDouble, nil
	case "backslash":
		return EscapeBackslash, nil
	case "none":
		return EscapeNone, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownEscapeMode, s)
}

// Policy is the resolved quoting/escaping configuration for one write.
type Policy struct {
	Delimiter byte
	EOL       string
	NA        string
	Quote     QuoteMode
	Escape    EscapeMode
}

// Field renders one cell. missing cells become the NA string verbatim.
func (p Policy) Field(cell string, missing bool) string {
	if missing {
		return p.NA
	}
	switch p.Quote {
	case QuoteAll:
		return p.wrap(cell)
	case QuoteNone:
		if p.Escape == EscapeBackslash {
			return p.backslash(cell, false)
		}
		return cell
	default:
		if p.needsQuote(cell) {
			return p.wrap(cell)
		}
		return cell
	}
}

func (p Policy) needsQuote(cell string) bool {
	if cell == p.NA {
		return true
	}
	for i := 0; i < len(cell); i++ {
		if cell[i] == p.Delimiter || cell[i] == '"' {
			return true
		}
	}
	return strings.ContainsAny(cell, p.EOL)
}

// wrap quotes the cell and applies the in-value escape mode.
func (p Policy) wrap(cell string) string {
	var b strings.Builder
	b.Grow(len(cell) + 2)
	b.WriteByte('"')
	switch p.Escape {
	case EscapeBackslash:
		b.WriteString(p.backslash(cell, true))
	case EscapeNone:
		b.WriteString(cell)
	default:
		for i := 0; i < len(cell); i++ {
			if cell[i] == '"' {
				b.WriteString(`""`)
				continue
			}
			b.WriteByte(cell[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// backslash prefixes special bytes. Inside quotes only the quote and the
// backslash itself need protection; unquoted cells also protect the
// delimiter and line breaks.
func (p Policy) backslash(cell string, quoted bool) string {
	var b strings.Builder
	b.Grow(len(cell))
	for i := 0; i < len(cell); i++ {
		c := cell[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
		case !quoted && (c == p.Delimiter || c == '\n' || c == '\r'):
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
