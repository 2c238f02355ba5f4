package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize folds s to NFKC, collapses every whitespace run to a single
// space and trims the result.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

// Lines splits s into lines and normalizes each one. Blank lines are kept as
// empty strings so line numbers stay meaningful.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(lineEndings.Replace(s), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = Normalize(line)
	}
	return lines
}

// FirstLine returns the normalized first line of s.
func FirstLine(s string) string {
	s = lineEndings.Replace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return Normalize(s)
}

// JoinPages concatenates page texts in order with sep between them. Empty
// pages still contribute a separator, matching how the pages were numbered.
func JoinPages(pages []string, sep string) string {
	return strings.Join(pages, sep)
}

// RemoveSpaces deletes every whitespace character from s. Model ranges such
// as "110 - 145" are keyed without internal whitespace.
func RemoveSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
