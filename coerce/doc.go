// Package coerce turns typed frame columns into output text.
//
// Coercion is a pure per-column function dispatched on the concrete column
// type: floats use shortest-round-trip formatting, booleans the TRUE/FALSE
// tokens, datetimes ISO-8601 in UTC, dates YYYY-MM-DD, factors their label
// text, verbatim columns their stored text, and anything else a generic
// display-text fallback. Missing entries never reach a type formatter.
//
// Columns may be coerced in parallel; the result is indexed by column
// position so output is identical for any worker count.
package coerce
