// Package load builds frames from JSON or YAML dataset documents.
//
// A document is a list of column descriptors:
//
//	columns:
//	  - name: city
//	    type: string
//	    values: [Oslo, Bergen, null]
//	  - name: temp
//	    type: float
//	    values: [3.5, null, -1.2]
//
// Recognized types: string, float, int, bool, factor, date, datetime,
// verbatim. When type is omitted it is inferred from the values. A null
// value is a missing entry.
package load
