package core

// convert.go normalizes raw cells from the FAERS ASCII files.
//
// The quarterly exports are mostly clean, but older quarters contain
// stray whitespace, quoted header names, and a delimiter at the end of
// every line. These helpers smooth that over before rows reach the
// merge and count stages.

import "strings"

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive lookup. The first occurrence of
// a duplicated name wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if _, exists := idx[key]; exists {
			continue
		}
		idx[key] = i
	}
	return idx
}

// CleanCell removes common export artifacts from a cell value:
// - Trims whitespace
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return s
}

// cleanHeader normalizes every header cell and drops the empty trailing
// column produced by a line-terminating delimiter.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = CleanCell(h)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// fitRow pads or truncates row to width columns.
func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
