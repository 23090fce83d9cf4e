// Package normalize turns raw Gmail messages into the flattened Email model
// the rest of the pipeline consumes.
package normalize

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"google.golang.org/api/gmail/v1"

	"github.com/r8slab/the-drop/internal/core"
)

// ParseMessage converts a full-format Gmail message into a normalized Email.
// Messages without a decodable HTML body return an error so the caller can
// skip them without aborting the run.
func ParseMessage(msg *gmail.Message) (core.Email, error) {
	if msg == nil {
		return core.Email{}, fmt.Errorf("nil message")
	}
	if msg.Payload == nil {
		return core.Email{}, fmt.Errorf("message %s has no payload", msg.Id)
	}

	email := core.Email{ID: msg.Id}
	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "From":
			email.From = header.Value
		case "Subject":
			email.Subject = header.Value
		case "Date":
			email.Date = header.Value
		}
	}

	body := extractHTMLBody(msg.Payload)
	if body == "" {
		return core.Email{}, fmt.Errorf("message %s has no decodable body", msg.Id)
	}
	email.HTML = body

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return core.Email{}, fmt.Errorf("failed to parse body of message %s: %w", msg.Id, err)
	}

	// Style and script text would otherwise leak into the extracted text.
	doc.Find("script, style").Remove()

	email.Text = extractText(doc)
	email.Links = extractLinks(doc)
	email.Images = extractImages(doc)

	return email, nil
}

// extractHTMLBody walks the MIME tree depth first. A part's own body data
// wins; otherwise the first text/html leaf is taken, recursing through nested
// multiparts in order. Single-part messages land in the first case whatever
// their content type.
func extractHTMLBody(part *gmail.MessagePart) string {
	if part.Body != nil && part.Body.Data != "" {
		if decoded, err := decodeBody(part.Body.Data); err == nil {
			return decoded
		}
	}

	for _, child := range part.Parts {
		if child.MimeType == "text/html" && child.Body != nil && child.Body.Data != "" {
			if decoded, err := decodeBody(child.Body.Data); err == nil {
				return decoded
			}
		}
		if strings.HasPrefix(child.MimeType, "multipart/") {
			if body := extractHTMLBody(child); body != "" {
				return body
			}
		}
	}

	return ""
}

// decodeBody decodes Gmail's URL-safe base64, which shows up both padded and
// unpadded in the wild.
func decodeBody(data string) (string, error) {
	if decoded, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(decoded), nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode body data: %w", err)
	}
	return string(decoded), nil
}

// extractText flattens the document into trimmed text lines in node order.
func extractText(doc *goquery.Document) string {
	var lines []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	for _, node := range doc.Nodes {
		walk(node)
	}

	return strings.Join(lines, "\n")
}

// extractLinks collects non-mailto anchors in document order, capped at
// core.MaxLinks.
func extractLinks(doc *goquery.Document) []core.Link {
	var links []core.Link
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "mailto:") {
			return true
		}
		links = append(links, core.Link{Label: strings.TrimSpace(s.Text()), URL: href})
		return len(links) < core.MaxLinks
	})
	return links
}

// extractImages collects non-inline images in document order, capped at
// core.MaxImages.
func extractImages(doc *goquery.Document) []core.Image {
	var images []core.Image
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if src == "" || strings.HasPrefix(src, "data:") {
			return true
		}
		images = append(images, core.Image{Src: src, Alt: s.AttrOr("alt", "")})
		return len(images) < core.MaxImages
	})
	return images
}
