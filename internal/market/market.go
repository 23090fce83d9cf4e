// Package market locates the market snapshot image inside "Exec Sum" style
// newsletters. The image is never labeled consistently, so location works
// through three heuristics tried in order: proximity to a markets heading,
// alt-text keywords, then the first image that doesn't look like chrome.
package market

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/r8slab/the-drop/internal/core"
)

// Heading phrases that sit directly above the snapshot chart.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)before\s*the\s*bell`),
	regexp.MustCompile(`(?i)market\s*snapshot`),
	regexp.MustCompile(`(?i)markets\s*at\s*a\s*glance`),
}

// Alt-text keywords that identify a chart when headings fail.
var altKeywords = []string{"market", "futures", "indices", "stocks", "bell"}

// Substrings that mark an image as layout chrome rather than content.
var noiseTerms = []string{"logo", "icon", "button", "social", "twitter", "facebook", "linkedin", "spacer", "1x1"}

// FindImage scans emails in order and returns the first market snapshot image
// URL found, or the empty string. Only emails from an executive-summary style
// sender are considered.
func FindImage(emails []core.Email) string {
	for _, email := range emails {
		if !isMarketSource(email) {
			continue
		}
		if src := findInEmail(email); src != "" {
			return src
		}
	}
	return ""
}

// isMarketSource reports whether the email looks like an Exec Sum issue.
func isMarketSource(email core.Email) bool {
	from := strings.ToLower(email.From)
	subject := strings.ToLower(email.Subject)
	return strings.Contains(from, "exec") || strings.Contains(from, "execsum") ||
		strings.Contains(subject, "executive summary") || strings.Contains(subject, "exec sum")
}

func findInEmail(email core.Email) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(email.HTML))
	if err != nil {
		return findFallback(email.Images)
	}

	if src := findNearHeading(doc); src != "" {
		return src
	}
	if src := findByAltText(doc); src != "" {
		return src
	}
	return findFallback(email.Images)
}

// findNearHeading walks every text node matching each heading pattern,
// climbs to its enclosing layout container and picks the next image in
// document order, the container's own subtree included. One image is judged
// per heading: a logo or icon hit ends that heading's attempt rather than
// walking further.
func findNearHeading(doc *goquery.Document) string {
	if len(doc.Nodes) == 0 {
		return ""
	}
	root := doc.Nodes[0]

	for _, pattern := range headingPatterns {
		for _, text := range findTextNodes(root, pattern) {
			container := findAncestor(text, "td", "tr", "table", "div")
			if container == nil {
				continue
			}
			img := nextImage(root, container)
			if img == nil {
				continue
			}
			src := nodeAttr(img, "src")
			if src == "" {
				continue
			}
			lower := strings.ToLower(src)
			if strings.Contains(lower, "logo") || strings.Contains(lower, "icon") {
				continue
			}
			return src
		}
	}
	return ""
}

// findByAltText returns the first image whose alt text names a market term.
func findByAltText(doc *goquery.Document) string {
	var src string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		alt := strings.ToLower(s.AttrOr("alt", ""))
		for _, keyword := range altKeywords {
			if strings.Contains(alt, keyword) {
				if v, ok := s.Attr("src"); ok && v != "" {
					src = v
					return false
				}
			}
		}
		return true
	})
	return src
}

// findFallback returns the first extracted image that avoids every noise term
// in both src and alt.
func findFallback(images []core.Image) string {
	for _, img := range images {
		srcLower := strings.ToLower(img.Src)
		altLower := strings.ToLower(img.Alt)

		noisy := false
		for _, term := range noiseTerms {
			if strings.Contains(srcLower, term) || strings.Contains(altLower, term) {
				noisy = true
				break
			}
		}
		if !noisy {
			return img.Src
		}
	}
	return ""
}

// findTextNodes collects text nodes matching the pattern in document order.
func findTextNodes(n *html.Node, pattern *regexp.Regexp) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && pattern.MatchString(n.Data) {
			nodes = append(nodes, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return nodes
}

// findAncestor climbs to the nearest ancestor with one of the given tag
// names.
func findAncestor(n *html.Node, names ...string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, name := range names {
			if p.Data == name {
				return p
			}
		}
	}
	return nil
}

// nextImage returns the first img element strictly after the container's
// opening position in document order, so images inside the container are
// seen before anything that follows it.
func nextImage(root, container *html.Node) *html.Node {
	var found *html.Node
	passed := false

	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if passed && n.Type == html.ElementNode && n.Data == "img" {
			found = n
			return true
		}
		if n == container {
			passed = true
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(root)

	return found
}

func nodeAttr(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
