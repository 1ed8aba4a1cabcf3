// Package sink resolves a write destination into a concrete byte sink.
//
// A destination is either a filesystem path, an already-open io.Writer, or
// absent, meaning the output is captured into a string via a process
// temporary file. Paths ending in .gz, .bz2 or .xz are routed through the
// matching compression codec; any other extension opens a plain file. The
// append flag selects append-vs-truncate open mode, and a UTF-8 byte-order
// mark is written only on fresh (non-append) output so an existing file is
// never corrupted by a second BOM.
//
// Resources are scoped to one serialization call: Close releases the codec
// before the file and removes the temporary file on every exit path.
package sink
