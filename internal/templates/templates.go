// Package templates holds the issue HTML and assembles formatted section
// content into it.
package templates

import (
	"regexp"
	"strings"
	"time"

	"github.com/r8slab/the-drop/internal/core"
	"github.com/r8slab/the-drop/internal/render"
)

// dateLayout is the long-form date shown in the issue header.
const dateLayout = "Monday, January 02, 2006"

// sectionKind selects which formatter a section runs through.
type sectionKind int

const (
	kindParagraph sectionKind = iota
	kindBullets
	kindScouting
	kindReads
)

// sectionMapping binds one model section to its template placeholder.
type sectionMapping struct {
	section     string
	placeholder string
	accent      string
	kind        sectionKind
}

// sectionMappings drives assembly. EMAIL_SUBJECT never renders into the
// document, and DEAL_FLOW_IPO is requested from the model but has no slot in
// the template, so neither has a row here.
var sectionMappings = []sectionMapping{
	{"GOOD_MORNING", "GOOD_MORNING_CONTENT", "", kindParagraph},
	{"BEFORE_THE_BELL_MARKETS", "BEFORE_THE_BELL_MARKETS", "#34D399", kindBullets},
	{"BEFORE_THE_BELL_EARNINGS_LAST", "BEFORE_THE_BELL_EARNINGS_LAST", "#34D399", kindBullets},
	{"BEFORE_THE_BELL_EARNINGS_UPCOMING", "BEFORE_THE_BELL_EARNINGS_UPCOMING", "", kindParagraph},
	{"HEADLINE_ROUNDUP", "HEADLINE_ROUNDUP", "#F472B6", kindBullets},
	{"PHARMA_HEALTH_INTEL", "PHARMA_HEALTH_INTEL", "#22D3EE", kindBullets},
	{"TECH_AI", "TECH_AI", "#FBBF24", kindBullets},
	{"DEAL_FLOW_MA", "DEAL_FLOW_MA", "#FB923C", kindBullets},
	{"DEAL_FLOW_VENTURE", "DEAL_FLOW_VENTURE", "#FB923C", kindBullets},
	{"DEAL_FLOW_SCOUTING", "DEAL_FLOW_SCOUTING", "", kindScouting},
	{"NYC_EVENTS", "NYC_EVENTS", "#4ADE80", kindBullets},
	{"NYC_RESTAURANT", "NYC_RESTAURANT", "", kindParagraph},
	{"CULTURE_SPORTS", "CULTURE_SPORTS", "#E879F9", kindBullets},
	{"CULTURE_MEME", "CULTURE_MEME", "", kindParagraph},
	{"CULTURE_INTERNET", "CULTURE_INTERNET", "#E879F9", kindBullets},
	{"READS_OF_THE_WEEK", "READS_OF_THE_WEEK", "#60A5FA", kindReads},
}

// Matches {{TOKEN}} placeholders.
var tokenRegex = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)

// Assemble renders the complete issue document for the given sections. A
// section the model skipped renders as an empty slot; the surrounding card
// stays visible so a thin issue is noticed rather than silently shortened.
// marketImageURL may be empty.
func Assemble(sections core.SectionMap, marketImageURL string, now time.Time, headerImage string) string {
	values := map[string]string{
		"DATE":                      now.Format(dateLayout),
		"HEADER_BG_IMAGE":           headerImage,
		"EXEC_SUM_MARKET_IMAGE_URL": marketImageURL,
	}

	for _, m := range sectionMappings {
		content := sections[m.section]
		switch m.kind {
		case kindParagraph:
			values[m.placeholder] = render.Paragraph(content)
		case kindBullets:
			values[m.placeholder] = render.Bullets(content, m.accent)
		case kindScouting:
			values[m.placeholder] = render.Scouting(content)
		case kindReads:
			values[m.placeholder] = render.Reads(content, m.accent)
		}
	}

	values["NYC_CALLOUT_SECTION"] = calloutSection(sections["NYC_CALLOUT"])

	return replaceTokens(issueTemplate, values)
}

// calloutSection builds the optional NYC callout row. The model signals "no
// callout today" with a literal NONE.
func calloutSection(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || strings.ToUpper(trimmed) == "NONE" {
		return ""
	}
	return replaceTokens(nycCalloutTemplate, map[string]string{
		"NYC_CALLOUT_CONTENT": render.Paragraph(content),
	})
}

// replaceTokens substitutes {{TOKEN}} placeholders in a single pass over the
// template. Replacement values are inserted verbatim and never rescanned, so
// section content that happens to contain a token-shaped string cannot
// trigger a second substitution, and the order of the value map is
// irrelevant. Tokens with no value resolve to the empty string.
func replaceTokens(template string, values map[string]string) string {
	return tokenRegex.ReplaceAllStringFunc(template, func(token string) string {
		return values[token[2:len(token)-2]]
	})
}
