// Package config loads named writer profiles from YAML and validates them
// using struct tags.
//
// A profile bundles a dialect name with an Options preset, so a CLI or a
// batch job can say "use the accounting profile" instead of repeating
// delimiter/quote/NA settings everywhere.
package config
