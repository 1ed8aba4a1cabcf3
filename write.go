package tabwrite

import (
	"log"

	"github.com/theoremus-urban-solutions/tabwrite/coerce"
	"github.com/theoremus-urban-solutions/tabwrite/escape"
	"github.com/theoremus-urban-solutions/tabwrite/frame"
	"github.com/theoremus-urban-solutions/tabwrite/sink"
)

// progressEvery is the row interval between progress log lines.
const progressEvery = 100000

// run is the serialization pipeline shared by every entry point: validate,
// coerce, locale-transform, resolve the sink, emit header and rows, release
// the sink on every path. capture selects string mode.
func run(f *frame.Frame, d dialect, spec sink.Spec, o Options, capture bool) (string, error) {
	set, err := resolve(o, d)
	if err != nil {
		return "", err
	}
	if err := f.Check(); err != nil {
		return "", err
	}

	results := coerce.Frame(f, coerce.Options{
		Threads:       set.threads,
		ExcelDatetime: set.excelDatetime,
	})
	if set.dec != '.' {
		coerce.ApplyDecimalMark(results, set.dec)
	}

	spec.Append = set.appendMode
	spec.BOM = set.bom
	snk, err := sink.Resolve(spec)
	if err != nil {
		return "", err
	}

	if err := emit(snk, set, f.Names(), results, f.NumRows()); err != nil {
		snk.Close()
		return "", err
	}
	if capture {
		return snk.Captured()
	}
	return "", snk.Close()
}

// emit writes the optional header followed by the data rows, columns joined
// in declaration order.
func emit(snk *sink.Sink, set settings, names []string, cols []coerce.Result, nrows int) error {
	w := escape.NewWriter(snk.Writer(), set.policy())

	if set.header {
		if err := w.WriteRow(names, nil); err != nil {
			return err
		}
	}

	row := make([]string, len(cols))
	missing := make([]bool, len(cols))
	for i := 0; i < nrows; i++ {
		for c := range cols {
			row[c] = cols[c].Text[i]
			missing[c] = cols[c].NA[i]
		}
		if err := w.WriteRow(row, missing); err != nil {
			return err
		}
		if set.progress && (i+1)%progressEvery == 0 {
			log.Printf("tabwrite: wrote %d/%d rows", i+1, nrows)
		}
	}
	if set.progress {
		log.Printf("tabwrite: wrote %d rows", nrows)
	}
	return w.Flush()
}
