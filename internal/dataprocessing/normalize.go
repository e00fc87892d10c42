package dataprocessing

import (
	"strings"
)

// NormalizeColumn maps a raw column label to its canonical identifier:
// lowercase, whitespace and the characters / ( ) - replaced with underscore,
// + replaced with the literal "plus", doubled underscores collapsed once.
//
// The collapse is a single pass: a contiguous run of more than two
// underscores is not fully collapsed. Known limitation, kept for parity with
// the dataset's historical column names.
func NormalizeColumn(label string) string {
	s := strings.TrimSpace(label)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "(", "_")
	s = strings.ReplaceAll(s, ")", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "+", "plus")
	s = strings.ReplaceAll(s, "__", "_")
	return s
}

// NormalizeColumns applies NormalizeColumn to every label.
func NormalizeColumns(labels []string) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = NormalizeColumn(label)
	}
	return out
}
