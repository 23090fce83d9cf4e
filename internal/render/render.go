// Package render turns raw section text from the model into the HTML
// fragments the issue template expects. The model writes a constrained
// markdown dialect (bold, links, dash bullets, "·" separators); everything
// here is string-level rewriting of that dialect into styled inline HTML.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/r8slab/the-drop/internal/core"
)

// Link colors used inside formatted content.
const (
	linkColor         = "#818CF8"
	scoutingLinkColor = "#A5B4FC"
)

var (
	// Matches bold spans: **text**
	boldRegex = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// Matches markdown links: [label](url)
	linkRegex = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)

	// Reads line shapes, tried in order. The model is inconsistent about
	// bolding and linking titles, so all the observed variants are covered.
	readFullLinked  = regexp.MustCompile(`^\*\*\[(.+?)\]\((.+?)\)\*\*\s*·\s*(.+?)\s*·\s*(.+)`)
	readShortLinked = regexp.MustCompile(`^\*\*\[(.+?)\]\((.+?)\)\*\*\s*·\s*(.+)`)
	readBoldTitle   = regexp.MustCompile(`^\*\*(.+?)\*\*\s*·\s*(.+?)\s*·\s*(.+)`)
	readBareLink    = regexp.MustCompile(`^\[(.+?)\]\((.+?)\)\s*·\s*(.+?)\s*·\s*(.+)`)
)

const bulletItemHTML = `<li style="margin-bottom: 12px; padding-left: 16px; position: relative; color: #E4E4E7; font-size: 15px; line-height: 1.6;">
                <span style="position: absolute; left: 0; color: %s;">›</span>
                %s
              </li>`

const scoutingSplitHTML = `<p style="margin: 0 0 8px 0; font-size: 15px; color: #E4E4E7; line-height: 1.6;">
                %s
              </p>
              <p style="margin: 0; font-size: 14px; color: #A5B4FC; line-height: 1.5;">
                Why it matters: %s
              </p>`

const scoutingPlainHTML = `<p style="margin: 0; font-size: 15px; color: #E4E4E7; line-height: 1.6;">%s</p>`

const readItemHTML = `<li style="margin-bottom: 16px; padding-left: 16px; position: relative;">
                <span style="position: absolute; left: 0; color: %s;">›</span>
                <a href="%s" style="color: #FFFFFF; font-size: 15px; font-weight: 600; text-decoration: none;">%s</a>
                <span style="color: #71717A; font-size: 14px;"> · %s</span>
                %s
                <p style="margin: 6px 0 0 0; font-size: 14px; color: #A1A1AA; line-height: 1.5;">%s</p>
              </li>`

const paywallBadgeHTML = `<span style="display: inline-block; background-color: #3F3F46; color: #A1A1AA; font-size: 11px; padding: 2px 6px; border-radius: 4px; margin-left: 6px;">Paywall</span>`

// Paragraph formats free-flowing section text. The enclosing element lives in
// the template, so only inline markup is rewritten here.
func Paragraph(content string) string {
	return applyInline(strings.TrimSpace(content), linkColor)
}

// Bullets formats a bulleted section as a run of <li> elements with the
// section's accent color on the marker. One leading "- ", "* " or "• " is
// stripped per line and blank lines are skipped.
func Bullets(content string, accent string) string {
	var items []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = stripBullet(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		line = applyInline(line, linkColor)
		items = append(items, fmt.Sprintf(bulletItemHTML, accent, line))
	}
	return strings.Join(items, "\n")
}

// Scouting formats the deal-scouting blurb. When the text carries a
// "Why it matters:" tail the two halves render as separate paragraphs with
// the tail de-emphasized.
func Scouting(content string) string {
	content = applyInline(strings.TrimSpace(content), scoutingLinkColor)

	if strings.Contains(content, "Why it matters:") {
		parts := strings.SplitN(content, "Why it matters:", 2)
		return fmt.Sprintf(scoutingSplitHTML, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	return fmt.Sprintf(scoutingPlainHTML, content)
}

// Reads formats the recommended-reading section. Each line is parsed into a
// ReadItem and rendered as a linked title, source, optional paywall badge and
// description.
func Reads(content string, accent string) string {
	var items []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = stripBullet(strings.TrimSpace(line))
		if line == "" {
			continue
		}

		item := ParseReadLine(line)
		badge := ""
		if item.Paywalled {
			badge = paywallBadgeHTML
		}
		items = append(items, fmt.Sprintf(readItemHTML, accent, item.URL, item.Title, item.Source, badge, item.Description))
	}
	return strings.Join(items, "\n")
}

// ParseReadLine parses one reads line into its parts. Title/source/description
// are separated by "·"; the title may be bold, linked, both or neither. When
// no URL can be extracted the item links to "#".
func ParseReadLine(line string) core.ReadItem {
	item := core.ReadItem{URL: "#"}

	if strings.Contains(line, "[Paywall]") || strings.Contains(line, "[paywall]") {
		item.Paywalled = true
		line = strings.ReplaceAll(line, "[Paywall]", "")
		line = strings.ReplaceAll(line, "[paywall]", "")
		line = strings.TrimSpace(line)
	}

	if m := readFullLinked.FindStringSubmatch(line); m != nil {
		item.Title, item.URL, item.Source, item.Description = m[1], m[2], m[3], m[4]
	} else if m := readShortLinked.FindStringSubmatch(line); m != nil {
		item.Title, item.URL = m[1], m[2]
		parts := strings.SplitN(m[3], "·", 2)
		item.Source = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			item.Description = strings.TrimSpace(parts[1])
		}
	} else if m := readBoldTitle.FindStringSubmatch(line); m != nil {
		item.Title, item.Source, item.Description = m[1], m[2], m[3]
		if u := linkRegex.FindStringSubmatch(line); u != nil {
			item.URL = u[2]
		}
	} else if m := readBareLink.FindStringSubmatch(line); m != nil {
		item.Title, item.URL, item.Source, item.Description = m[1], m[2], m[3], m[4]
	} else {
		item.Title = line
		if u := linkRegex.FindStringSubmatch(line); u != nil {
			item.URL = u[2]
		}
	}

	// Descriptions keep only the label of any leftover markdown link.
	item.Description = linkRegex.ReplaceAllString(item.Description, "$1")

	return item
}

// applyInline rewrites bold spans and markdown links to styled inline HTML.
// Bold runs first so a bold linked title nests as <strong><a>...</a></strong>.
func applyInline(s string, link string) string {
	s = boldRegex.ReplaceAllString(s, `<strong style="color: #FFFFFF;">$1</strong>`)
	s = linkRegex.ReplaceAllString(s, `<a href="$2" style="color: `+link+`;">$1</a>`)
	return s
}

// stripBullet removes one leading list marker. Text after the marker keeps
// its spacing.
func stripBullet(line string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):]
		}
	}
	return line
}
