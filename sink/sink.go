package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// bomUTF8 is the 3-byte UTF-8 byte-order mark Excel-oriented consumers want.
var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Spec describes where the output goes.
type Spec struct {
	// Path is a filesystem destination. Extension selects compression.
	Path string
	// Stream is an already-open destination; it is written to directly and
	// never closed or repositioned by this package.
	Stream io.Writer
	// Append opens Path in append mode instead of truncating.
	Append bool
	// BOM requests a leading UTF-8 byte-order mark; ignored when appending.
	BOM bool
}

// CompressionError reports a codec that failed to initialize or finalize.
// Partially written compressed output should be treated as corrupt.
type CompressionError struct {
	Ext string
	Err error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("compression %s: %v", e.Ext, e.Err)
}

func (e *CompressionError) Unwrap() error { return e.Err }

// Sink is a resolved destination. Write goes to the innermost writer; Close
// releases everything acquired by Resolve, innermost first.
type Sink struct {
	w        io.Writer
	codec    io.WriteCloser
	file     *os.File
	temp     string // temp file path in capture mode, "" otherwise
	codecExt string
	closed   bool
}

// Writer returns the byte sink rows are written into.
func (s *Sink) Writer() io.Writer { return s.w }

// Resolve opens the destination described by spec. With no Path and no
// Stream the sink captures into a temporary file; use Captured to collect
// the text.
func Resolve(spec Spec) (*Sink, error) {
	if spec.Stream != nil {
		s := &Sink{w: spec.Stream}
		return s, writeBOM(s.w, spec)
	}

	s := &Sink{}
	var err error
	if spec.Path != "" {
		flags := os.O_WRONLY | os.O_CREATE
		if spec.Append {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		s.file, err = os.OpenFile(spec.Path, flags, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", spec.Path, err)
		}
	} else {
		s.file, err = os.CreateTemp("", "tabwrite-*.tmp")
		if err != nil {
			return nil, fmt.Errorf("create temp file: %w", err)
		}
		s.temp = s.file.Name()
	}

	s.w = s.file
	if spec.Path != "" {
		if err := s.wrapCodec(spec.Path); err != nil {
			s.file.Close()
			return nil, err
		}
	}
	if err := writeBOM(s.w, spec); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// wrapCodec layers a compressor over the file when the extension asks for
// one. No other extensions trigger special handling.
func (s *Sink) wrapCodec(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz":
		s.codec = gzip.NewWriter(s.file)
	case ".bz2":
		zw, err := bzip2.NewWriter(s.file, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
		if err != nil {
			return &CompressionError{Ext: ext, Err: err}
		}
		s.codec = zw
	case ".xz":
		zw, err := xz.NewWriter(s.file)
		if err != nil {
			return &CompressionError{Ext: ext, Err: err}
		}
		s.codec = zw
	default:
		return nil
	}
	s.codecExt = ext
	s.w = s.codec
	return nil
}

func writeBOM(w io.Writer, spec Spec) error {
	if !spec.BOM || spec.Append {
		return nil
	}
	_, err := w.Write(bomUTF8)
	return err
}

// Close releases the sink. It is safe to call more than once; a capture
// sink also removes its temporary file unless Captured already did.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var first error
	if s.codec != nil {
		if err := s.codec.Close(); err != nil {
			first = &CompressionError{Ext: s.codecExt, Err: err}
		}
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil && first == nil {
			first = err
		}
	}
	if s.temp != "" {
		if err := os.Remove(s.temp); err != nil && first == nil {
			first = err
		}
		s.temp = ""
	}
	return first
}

// Captured finalizes a capture sink and returns the accumulated text. The
// temporary file is removed whether or not reading succeeds.
func (s *Sink) Captured() (string, error) {
	if s.temp == "" {
		return "", fmt.Errorf("sink is not in capture mode")
	}
	path := s.temp
	s.temp = ""
	defer os.Remove(path)

	s.closed = true
	if err := s.file.Close(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
