package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/theoremus-urban-solutions/tabwrite"
	"github.com/theoremus-urban-solutions/tabwrite/config"
	"github.com/theoremus-urban-solutions/tabwrite/frame"
	"github.com/theoremus-urban-solutions/tabwrite/load"
)

func main() {
	in := flag.String("in", "", "dataset document (.json|.yml|.yaml)")
	out := flag.String("out", "", "destination path; empty writes to stdout (.gz|.bz2|.xz compress)")
	dialectName := flag.String("dialect", "csv", "delim|csv|csv2|tsv|excel-csv|excel-csv2")
	profilesPath := flag.String("profiles", "", "writer profiles file (overrides -dialect and option flags)")
	profileName := flag.String("profile", "", "profile name from -profiles; default is the first profile")
	delim := flag.String("delim", "", "delimiter override (single character)")
	na := flag.String("na", "NA", "missing-value string")
	appendMode := flag.Bool("append", false, "append to the destination instead of truncating")
	quote := flag.String("quote", "", "needed|all|none")
	escapeMode := flag.String("escape", "", "double|backslash|none")
	eol := flag.String("eol", "", `line terminator; default "\n"`)
	dec := flag.String("dec", "", "decimal mark override (single character)")
	threads := flag.Int("threads", 0, "parallel coercion degree; 0 uses GOMAXPROCS")
	progress := flag.Bool("progress", false, "log row-count progress")
	flag.Parse()

	tabwrite.InitLogging()
	if *in == "" {
		fmt.Fprintln(os.Stderr, "tabwrite: -in is required")
		os.Exit(2)
	}

	f, err := load.File(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabwrite: load %s: %v\n", *in, err)
		os.Exit(1)
	}

	dialect := *dialectName
	opt := tabwrite.Options{
		Delimiter:   *delim,
		NA:          na,
		Append:      *appendMode,
		Quote:       *quote,
		Escape:      *escapeMode,
		EOL:         *eol,
		DecimalMark: *dec,
		Threads:     *threads,
		Progress:    *progress,
	}
	if *profilesPath != "" {
		profiles, err := config.LoadProfiles(*profilesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tabwrite: %v\n", err)
			os.Exit(1)
		}
		p, err := config.Select(profiles, *profileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tabwrite: %v\n", err)
			os.Exit(1)
		}
		if p.Dialect != "" {
			dialect = p.Dialect
		}
		opt = p.Options
	}

	if err := emit(f, dialect, *out, opt); err != nil {
		fmt.Fprintf(os.Stderr, "tabwrite: %v\n", err)
		os.Exit(1)
	}
}

func emit(f *frame.Frame, dialect, out string, opt tabwrite.Options) error {
	if out == "" {
		text, err := format(f, dialect, opt)
		if err != nil {
			return err
		}
		_, err = os.Stdout.WriteString(text)
		return err
	}
	switch dialect {
	case "delim":
		return tabwrite.Write(f, out, opt)
	case "csv":
		return tabwrite.WriteCSV(f, out, opt)
	case "csv2":
		return tabwrite.WriteCSV2(f, out, opt)
	case "tsv":
		return tabwrite.WriteTSV(f, out, opt)
	case "excel-csv":
		return tabwrite.WriteExcelCSV(f, out, opt)
	case "excel-csv2":
		return tabwrite.WriteExcelCSV2(f, out, opt)
	}
	return fmt.Errorf("unknown dialect %q", dialect)
}

func format(f *frame.Frame, dialect string, opt tabwrite.Options) (string, error) {
	switch dialect {
	case "delim":
		return tabwrite.Format(f, opt)
	case "csv":
		return tabwrite.FormatCSV(f, opt)
	case "csv2":
		return tabwrite.FormatCSV2(f, opt)
	case "tsv":
		return tabwrite.FormatTSV(f, opt)
	case "excel-csv":
		return tabwrite.FormatExcelCSV(f, opt)
	case "excel-csv2":
		return tabwrite.FormatExcelCSV2(f, opt)
	}
	return "", fmt.Errorf("unknown dialect %q", dialect)
}
