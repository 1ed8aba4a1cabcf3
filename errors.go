package tabwrite

import (
	"github.com/theoremus-urban-solutions/tabwrite/escape"
	"github.com/theoremus-urban-solutions/tabwrite/frame"
	"github.com/theoremus-urban-solutions/tabwrite/sink"
)

// The error taxonomy of the writer, surfaced here so callers only need this
// package for errors.Is/As checks.
//
// Validation errors (invalid input, unknown modes) fire before any byte is
// written. I/O errors propagate immediately after acquired resources are
// released; partially written output is not rolled back.
type (
	// InvalidInputError reports a non-rectangular or nested-column frame.
	InvalidInputError = frame.InvalidInputError
	// CompressionError reports a codec that failed to initialize or close.
	CompressionError = sink.CompressionError
)

var (
	// ErrUnsupportedQuoteMode is wrapped around an unrecognized quote token.
	ErrUnsupportedQuoteMode = escape.ErrUnknownQuoteMode
	// ErrUnsupportedEscapeMode is wrapped around an unrecognized escape token.
	ErrUnsupportedEscapeMode = escape.ErrUnknownEscapeMode
)
