package gmail

import (
	"strings"
	"testing"
	"time"
)

func TestBuildQuery(t *testing.T) {
	after := time.Unix(1754300000, 0)

	tests := []struct {
		name        string
		labels      []string
		includeRead bool
		expected    string
	}{
		{
			name:        "single label unread only",
			labels:      []string{"Newsletters"},
			includeRead: false,
			expected:    `{label:"Newsletters"} is:unread after:1754300000`,
		},
		{
			name:        "multiple labels form an OR group",
			labels:      []string{"Newsletters", "Newsletters/Tech", "Newsletters/Finance"},
			includeRead: false,
			expected:    `{label:"Newsletters" label:"Newsletters/Tech" label:"Newsletters/Finance"} is:unread after:1754300000`,
		},
		{
			name:        "include read drops the unread filter",
			labels:      []string{"Newsletters"},
			includeRead: true,
			expected:    `{label:"Newsletters"} after:1754300000`,
		},
		{
			name:        "no labels yields empty query",
			labels:      nil,
			includeRead: false,
			expected:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildQuery(tt.labels, after, tt.includeRead)
			if got != tt.expected {
				t.Errorf("Expected query %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFilterNewsletterLabels(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		root     string
		expected []string
	}{
		{
			name:     "root label matches exactly",
			labels:   []string{"INBOX", "Newsletters", "Work"},
			root:     "Newsletters",
			expected: []string{"Newsletters"},
		},
		{
			name:     "nested labels match",
			labels:   []string{"Newsletters", "Newsletters/Tech", "Newsletters/Finance", "INBOX"},
			root:     "Newsletters",
			expected: []string{"Newsletters", "Newsletters/Tech", "Newsletters/Finance"},
		},
		{
			name:     "prefix without separator does not match",
			labels:   []string{"NewslettersArchive", "Newsletters"},
			root:     "Newsletters",
			expected: []string{"Newsletters"},
		},
		{
			name:     "different root",
			labels:   []string{"Newsletters", "Digests/Daily"},
			root:     "Digests",
			expected: []string{"Digests/Daily"},
		},
		{
			name:     "no matches",
			labels:   []string{"INBOX", "SENT"},
			root:     "Newsletters",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterNewsletterLabels(tt.labels, tt.root)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d labels, got %d: %v", len(tt.expected), len(got), got)
			}
			for i, name := range tt.expected {
				if got[i] != name {
					t.Errorf("Expected label %q at index %d, got %q", name, i, got[i])
				}
			}
		})
	}
}

func TestBuildHTMLMessage(t *testing.T) {
	raw := buildHTMLMessage("drop@example.com", "Today's Drop: AI Eats Everything", "<html><body>Hi</body></html>", "b42")

	expectedLines := []string{
		"To: drop@example.com\r\n",
		"Subject: Today's Drop: AI Eats Everything\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: multipart/alternative; boundary=\"b42\"\r\n",
		"--b42\r\n",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n",
		"<html><body>Hi</body></html>\r\n",
	}
	for _, line := range expectedLines {
		if !strings.Contains(raw, line) {
			t.Errorf("Expected message to contain %q", line)
		}
	}

	if !strings.HasSuffix(raw, "--b42--\r\n") {
		t.Errorf("Expected message to end with closing boundary, got %q", raw[len(raw)-20:])
	}

	headerEnd := strings.Index(raw, "\r\n\r\n")
	if headerEnd == -1 {
		t.Fatal("Expected blank line separating headers from body")
	}
	if strings.Contains(raw[:headerEnd], "--b42") {
		t.Error("Expected boundary markers only after the header block")
	}
}

func TestBuildPlainMessage(t *testing.T) {
	raw := buildPlainMessage("drop@example.com", "The Drop: Generation Failed", "The Drop failed to generate.\n\nError: boom")

	expectedLines := []string{
		"To: drop@example.com\r\n",
		"Subject: The Drop: Generation Failed\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n",
	}
	for _, line := range expectedLines {
		if !strings.Contains(raw, line) {
			t.Errorf("Expected message to contain %q", line)
		}
	}

	if !strings.HasSuffix(raw, "Error: boom") {
		t.Error("Expected body at end of message")
	}
}
