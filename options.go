package tabwrite

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/tabwrite/escape"
)

// Options is the configuration surface shared by every entry point. The zero
// value means "use the dialect defaults".
type Options struct {
	// Delimiter overrides the dialect's field separator (single character).
	Delimiter string `yaml:"delimiter" validate:"omitempty,max=1"`
	// NA is the missing-value string; nil means "NA".
	NA *string `yaml:"na"`
	// Append opens an existing destination for appending instead of
	// truncating it.
	Append bool `yaml:"append"`
	// Header controls the column-name row; nil means !Append, so appending
	// to an existing file does not duplicate the header.
	Header *bool `yaml:"header"`
	// Quote is one of needed, all, none; empty means needed.
	Quote string `yaml:"quote"`
	// Escape is one of double, backslash, none; empty means double.
	Escape string `yaml:"escape"`
	// EOL is the line terminator; empty means "\n".
	EOL string `yaml:"eol"`
	// BOM requests a UTF-8 byte-order mark on fresh output.
	BOM bool `yaml:"bom"`
	// DecimalMark overrides the dialect's decimal mark (single character).
	DecimalMark string `yaml:"decimalMark" validate:"omitempty,max=1"`
	// Threads is the parallel coercion degree; 0 uses GOMAXPROCS.
	Threads int `yaml:"threads" validate:"gte=0"`
	// Progress logs row-count progress while writing.
	Progress bool `yaml:"progress"`

	// Deprecated: use Delimiter.
	Sep string `yaml:"sep"`
	// Deprecated: use NA.
	NAString *string `yaml:"naString"`
	// Deprecated: use Header.
	ColNames *bool `yaml:"colNames"`
	// Deprecated: use Escape.
	QMethod string `yaml:"qmethod"`
}

// dialect is a named combination of delimiter, decimal mark, quoting and BOM
// policy selected by the entry point.
type dialect struct {
	delimiter     byte
	decimalMark   byte
	quoteAll      bool
	bom           bool
	excelDatetime bool
}

var (
	dialectDelim     = dialect{delimiter: ' '}
	dialectCSV       = dialect{delimiter: ','}
	dialectCSV2      = dialect{delimiter: ';', decimalMark: ','}
	dialectTSV       = dialect{delimiter: '\t'}
	dialectExcelCSV  = dialect{delimiter: ',', quoteAll: true, bom: true, excelDatetime: true}
	dialectExcelCSV2 = dialect{delimiter: ';', decimalMark: ',', quoteAll: true, bom: true, excelDatetime: true}
)

// settings is the fully resolved configuration the writer runs on.
type settings struct {
	delim         byte
	na            string
	appendMode    bool
	header        bool
	quote         escape.QuoteMode
	esc           escape.EscapeMode
	eol           string
	bom           bool
	dec           byte
	threads       int
	progress      bool
	excelDatetime bool
}

var validate = validator.New()

// migrate reroutes deprecated option names to their canonical fields so the
// core never sees a compatibility branch.
func (o Options) migrate() Options {
	if o.Sep != "" && o.Delimiter == "" {
		log.Printf("tabwrite: option Sep is deprecated, use Delimiter")
		o.Delimiter = o.Sep
	}
	if o.NAString != nil && o.NA == nil {
		log.Printf("tabwrite: option NAString is deprecated, use NA")
		o.NA = o.NAString
	}
	if o.ColNames != nil && o.Header == nil {
		log.Printf("tabwrite: option ColNames is deprecated, use Header")
		o.Header = o.ColNames
	}
	if o.QMethod != "" && o.Escape == "" {
		log.Printf("tabwrite: option QMethod is deprecated, use Escape")
		o.Escape = o.QMethod
	}
	return o
}

// resolve merges options into the dialect and validates the result. It runs
// before any coercion or I/O so unrecognized modes fail with no partial work.
func resolve(o Options, d dialect) (settings, error) {
	o = o.migrate()
	if err := validate.Struct(o); err != nil {
		return settings{}, fmt.Errorf("invalid options: %w", err)
	}

	set := settings{
		delim:         d.delimiter,
		na:            "NA",
		appendMode:    o.Append,
		eol:           "\n",
		dec:           '.',
		threads:       o.Threads,
		progress:      o.Progress,
		excelDatetime: d.excelDatetime,
	}
	if o.Delimiter != "" {
		if len(o.Delimiter) != 1 {
			return settings{}, fmt.Errorf("delimiter must be a single byte, got %q", o.Delimiter)
		}
		set.delim = o.Delimiter[0]
	}
	if d.decimalMark != 0 {
		set.dec = d.decimalMark
	}
	if o.DecimalMark != "" {
		if len(o.DecimalMark) != 1 {
			return settings{}, fmt.Errorf("decimal mark must be a single byte, got %q", o.DecimalMark)
		}
		set.dec = o.DecimalMark[0]
	}
	if o.NA != nil {
		set.na = *o.NA
	}
	if o.EOL != "" {
		set.eol = o.EOL
	}

	if o.Header != nil {
		set.header = *o.Header
	} else {
		set.header = !o.Append
	}

	var err error
	if d.quoteAll {
		set.quote = escape.QuoteAll
	} else if set.quote, err = escape.ParseQuoteMode(o.Quote); err != nil {
		return settings{}, err
	}
	if set.esc, err = escape.ParseEscapeMode(o.Escape); err != nil {
		return settings{}, err
	}

	// The BOM must not be duplicated into an existing file.
	set.bom = (d.bom || o.BOM) && !o.Append
	return set, nil
}

func (s settings) policy() escape.Policy {
	return escape.Policy{
		Delimiter: s.delim,
		EOL:       s.eol,
		NA:        s.na,
		Quote:     s.quote,
		Escape:    s.esc,
	}
}
