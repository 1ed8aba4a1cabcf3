// Package frame defines the in-memory rectangular dataset model.
//
// A Frame is an ordered set of uniquely named, equal-length columns. Columns
// carry a closed set of concrete types (string, float, int, bool, factor,
// date, datetime, verbatim, opaque); the concrete type drives coercion in the
// coerce package. Frames are read-only inputs: serialization never mutates
// them.
//
// Missing entries are tracked per column through an NA mask. A missing entry
// never flows through type-specific formatting; it is replaced by the
// configured NA string at emission time.
package frame
