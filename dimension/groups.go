package dimension

import (
	"regexp"
	"strings"

	"github.com/tsawler/specsheet/text"
)

// DefaultFamilyToken is the family-code pair that marks a model group line.
const DefaultFamilyToken = "ZR/ZT"

var groupSeparator = regexp.MustCompile(`\s*&\s*`)

// Groups is the phase 1 result: the product family and the model group
// labels in the order they were first seen.
type Groups struct {
	ProductFamily string
	Labels        []string
}

// DetectModelGroups reads the first page's text. The product family is the
// normalized first line. A marker line is one containing token together with
// an opening parenthesis; it is split on "&" into group labels. A marker line
// without "&" that is directly followed by a line joining labels with "&"
// (such as a "ZR/ZT (Oil-Free)" heading over "ZR 110 & ZT 110") takes its
// labels from that line; otherwise the marker line is itself the only label.
//
// A page without a marker line yields no labels.
func DetectModelGroups(firstPage, token string) Groups {
	if token == "" {
		token = DefaultFamilyToken
	}

	groups := Groups{ProductFamily: text.FirstLine(firstPage)}
	seen := make(map[string]bool)
	add := func(line string) {
		for _, piece := range groupSeparator.Split(line, -1) {
			label := text.Normalize(piece)
			if label == "" || seen[label] {
				continue
			}
			seen[label] = true
			groups.Labels = append(groups.Labels, label)
		}
	}

	lines := text.Lines(firstPage)
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !isMarker(line, token) {
			continue
		}
		if strings.Contains(line, "&") {
			add(line)
			continue
		}
		if next, ok := nextNonEmpty(lines, i+1); ok && strings.Contains(lines[next], "&") && !isMarker(lines[next], token) {
			add(lines[next])
			i = next
			continue
		}
		add(line)
	}

	return groups
}

func isMarker(line, token string) bool {
	return strings.Contains(line, token) && strings.Contains(line, "(")
}

func nextNonEmpty(lines []string, from int) (int, bool) {
	for i := from; i < len(lines); i++ {
		if lines[i] != "" {
			return i, true
		}
	}
	return 0, false
}
