package sections

import (
	"sort"
	"strings"

	"github.com/r8slab/the-drop/internal/core"
)

// markerPrefix introduces a section heading in the model response.
const markerPrefix = "## "

// Parse splits a model response into named sections. A line starting with
// "## " opens a section named by the trimmed remainder; following lines
// accumulate as its body until the next marker. Bodies are joined with
// newlines and trimmed, so interior blank lines survive. Text before the
// first marker is dropped, and when the model repeats a section name the
// last occurrence wins.
func Parse(response string) core.SectionMap {
	result := make(core.SectionMap)

	var name string
	var body []string
	inSection := false

	flush := func() {
		if inSection {
			result[name] = strings.TrimSpace(strings.Join(body, "\n"))
		}
	}

	for _, line := range strings.Split(response, "\n") {
		if strings.HasPrefix(line, markerPrefix) {
			flush()
			name = strings.TrimSpace(line[len(markerPrefix):])
			body = nil
			inSection = true
			continue
		}
		if inSection {
			body = append(body, line)
		}
	}
	flush()

	return result
}

// Names returns the section names present in the map, sorted for stable
// output.
func Names(m core.SectionMap) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
