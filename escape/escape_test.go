package escape

import (
	"bytes"
	"errors"
	"testing"
)

func defaultPolicy() Policy {
	return Policy{Delimiter: ',', EOL: "\n", NA: "NA", Quote: QuoteNeeded, Escape: EscapeDouble}
}

func TestFieldQuoteNeeded(t *testing.T) {
	p := defaultPolicy()

	tests := []struct {
		name string
		cell string
		want string
	}{
		{"plain", "abc", "abc"},
		{"embedded delimiter", "a,b", `"a,b"`},
		{"embedded quote", `he said "hi"`, `"he said ""hi"""`},
		{"embedded newline", "a\nb", "\"a\nb\""},
		{"literal NA is disambiguated", "NA", `"NA"`},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Field(tc.cell, false); got != tc.want {
				t.Errorf("Field(%q) = %q, want %q", tc.cell, got, tc.want)
			}
		})
	}
}

func TestFieldMissingAlwaysVerbatim(t *testing.T) {
	for _, q := range []QuoteMode{QuoteNeeded, QuoteAll, QuoteNone} {
		p := defaultPolicy()
		p.Quote = q
		if got := p.Field("ignored", true); got != "NA" {
			t.Errorf("quote mode %v: missing = %q, want NA", q, got)
		}
	}
}

func TestFieldQuoteAll(t *testing.T) {
	p := defaultPolicy()
	p.Quote = QuoteAll
	if got := p.Field("abc", false); got != `"abc"` {
		t.Errorf("QuoteAll = %q, want %q", got, `"abc"`)
	}
}

func TestFieldQuoteNoneIsVerbatim(t *testing.T) {
	p := defaultPolicy()
	p.Quote = QuoteNone
	p.Escape = EscapeNone
	if got := p.Field("a,b", false); got != "a,b" {
		t.Errorf("QuoteNone = %q, want a,b", got)
	}
}

func TestFieldBackslashEscaping(t *testing.T) {
	p := defaultPolicy()
	p.Escape = EscapeBackslash

	// Quoted cell: quote and backslash are protected.
	if got := p.Field(`a"b\c,d`, false); got != `"a\"b\\c,d"` {
		t.Errorf("quoted backslash = %q", got)
	}

	// Unquoted (QuoteNone): delimiter and newline protected too.
	p.Quote = QuoteNone
	if got := p.Field("a,b\nc", false); got != "a\\,b\\\nc" {
		t.Errorf("unquoted backslash = %q", got)
	}
}

func TestQuotingIdempotence(t *testing.T) {
	// A value already containing balanced quotes is escaped once; the escaped
	// output re-parses to the original, it is not re-wrapped cell-for-cell.
	p := defaultPolicy()
	first := p.Field("a,b", false)
	if first != `"a,b"` {
		t.Fatalf("first pass = %q", first)
	}
	second := p.Field(first, false)
	if second != `"""a,b"""` {
		t.Errorf("escaping the literal text %q = %q, want %q", first, second, `"""a,b"""`)
	}
}

func TestParseModes(t *testing.T) {
	if _, err := ParseQuoteMode("fancy"); !errors.Is(err, ErrUnknownQuoteMode) {
		t.Errorf("expected ErrUnknownQuoteMode, got %v", err)
	}
	if _, err := ParseEscapeMode("fancy"); !errors.Is(err, ErrUnknownEscapeMode) {
		t.Errorf("expected ErrUnknownEscapeMode, got %v", err)
	}
	if m, err := ParseQuoteMode(""); err != nil || m != QuoteNeeded {
		t.Errorf("empty quote token should default to needed")
	}
	if m, err := ParseEscapeMode(""); err != nil || m != EscapeDouble {
		t.Errorf("empty escape token should default to double")
	}
}

func TestWriterRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, defaultPolicy())

	if err := w.WriteRow([]string{"name", "note"}, nil); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRow([]string{"a,b", ""}, []bool{false, true}); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "name,note\n\"a,b\",NA\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriterCustomEOL(t *testing.T) {
	var buf bytes.Buffer
	p := defaultPolicy()
	p.EOL = "\r\n"
	w := NewWriter(&buf, p)
	if err := w.WriteRow([]string{"x"}, nil); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "x\r\n" {
		t.Errorf("output = %q", buf.String())
	}
}
