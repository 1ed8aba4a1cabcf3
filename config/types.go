package config

import (
	"github.com/theoremus-urban-solutions/tabwrite"
)

// Profile is a named writer preset.
type Profile struct {
	Name    string           `yaml:"name" validate:"required"`
	Dialect string           `yaml:"dialect" validate:"omitempty,oneof=delim csv csv2 tsv excel-csv excel-csv2"`
	Options tabwrite.Options `yaml:"options"`
}

// File is the root of a profiles document.
type File struct {
	Profiles []Profile `yaml:"profiles" validate:"required,dive"`
}
