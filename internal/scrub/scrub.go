package scrub

import "strings"

// ghost blanks: values spreadsheets and exports leave behind for empty
// cells. Case-sensitive as listed.
var ghostBlanks = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
	"NaN":  {},
	"-":    {},
	"<NA>": {},
}

// Clean trims a raw answer cell and reports whether anything usable is
// left. Absent values must be excluded from all downstream counting,
// including question base sizes.
func Clean(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if _, ghost := ghostBlanks[v]; ghost {
		return "", false
	}
	return v, true
}

// CleanTokens splits a multicode cell on commas and scrubs each piece.
// Pieces that come back blank are dropped; a cell of only separators
// yields nil.
func CleanTokens(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		if tok, ok := Clean(piece); ok {
			out = append(out, tok)
		}
	}
	return out
}
