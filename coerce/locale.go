package coerce

import "strings"

// ApplyDecimalMark rewrites the decimal point of originally-numeric column
// text to mark, at the precision already rendered. It runs before escaping,
// so a comma introduced here is still quoted like any other embedded
// delimiter. Missing entries and non-numeric columns are untouched.
func ApplyDecimalMark(results []Result, mark byte) {
	if mark == '.' {
		return
	}
	for ci := range results {
		if !results[ci].Numeric {
			continue
		}
		text := results[ci].Text
		for i := range text {
			if results[ci].NA[i] {
				continue
			}
			if j := strings.IndexByte(text[i], '.'); j >= 0 {
				b := []byte(text[i])
				b[j] = mark
				text[i] = string(b)
			}
		}
	}
}
