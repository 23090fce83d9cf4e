package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/r8slab/the-drop/internal/core"
)

var (
	monday    = time.Date(2025, 8, 4, 6, 30, 0, 0, time.UTC)
	wednesday = time.Date(2025, 8, 6, 6, 30, 0, 0, time.UTC)
)

func TestBuildUserMessageDateLine(t *testing.T) {
	result := BuildUserMessage(nil, wednesday)

	if !strings.Contains(result, "Today is Wednesday, August 06, 2025.") {
		t.Errorf("Expected formatted date line, got:\n%s", result)
	}
}

func TestBuildUserMessageDensity(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		cadence string
		density string
	}{
		{
			name:    "monday issues run denser",
			now:     monday,
			cadence: "This is a Monday issue",
			density: "denser (8-10 min read, 55-65 items)",
		},
		{
			name:    "mid-week issues run lighter",
			now:     wednesday,
			cadence: "This is a mid-week issue",
			density: "lighter (5-7 min read, 40-50 items)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildUserMessage(nil, tt.now)
			if !strings.Contains(result, tt.cadence) {
				t.Errorf("Expected cadence %q in message", tt.cadence)
			}
			if !strings.Contains(result, tt.density) {
				t.Errorf("Expected density %q in message", tt.density)
			}
		})
	}
}

func TestBuildUserMessageEmailBlock(t *testing.T) {
	emails := []core.Email{
		{
			From:    "Exec Sum <hi@execsum.co>",
			Subject: "Markets wobble",
			Date:    "Mon, 4 Aug 2025 06:02:11 -0400",
			Text:    "Futures slipped overnight.",
			Links: []core.Link{
				{Label: "Full story", URL: "https://example.com/story"},
			},
		},
	}

	result := BuildUserMessage(emails, monday)

	expected := []string{
		"FROM: Exec Sum <hi@execsum.co>",
		"SUBJECT: Markets wobble",
		"DATE: Mon, 4 Aug 2025 06:02:11 -0400",
		"CONTENT:\nFutures slipped overnight.",
		"LINKS:\n- Full story: https://example.com/story",
	}
	for _, want := range expected {
		if !strings.Contains(result, want) {
			t.Errorf("Expected message to contain %q", want)
		}
	}
}

func TestBuildUserMessageTruncatesContent(t *testing.T) {
	email := core.Email{
		From: "sender",
		Text: strings.Repeat("a", maxContentChars) + "OVERFLOW",
	}

	result := BuildUserMessage([]core.Email{email}, monday)

	if strings.Contains(result, "OVERFLOW") {
		t.Error("Expected content beyond the cap to be dropped")
	}
	if !strings.Contains(result, strings.Repeat("a", maxContentChars)) {
		t.Error("Expected content up to the cap to survive")
	}
}

func TestBuildUserMessageCapsLinks(t *testing.T) {
	email := core.Email{From: "sender"}
	for i := 0; i < 12; i++ {
		email.Links = append(email.Links, core.Link{
			Label: "link" + string(rune('A'+i)),
			URL:   "https://example.com",
		})
	}

	result := BuildUserMessage([]core.Email{email}, monday)

	if !strings.Contains(result, "linkJ") {
		t.Error("Expected tenth link to be included")
	}
	if strings.Contains(result, "linkK") {
		t.Error("Expected eleventh link to be dropped")
	}
}

func TestBuildUserMessageSectionSkeleton(t *testing.T) {
	result := BuildUserMessage(nil, monday)

	markers := []string{
		"## EMAIL_SUBJECT",
		"## GOOD_MORNING",
		"## BEFORE_THE_BELL_MARKETS",
		"## BEFORE_THE_BELL_EARNINGS_LAST",
		"## BEFORE_THE_BELL_EARNINGS_UPCOMING",
		"## HEADLINE_ROUNDUP",
		"## PHARMA_HEALTH_INTEL",
		"## TECH_AI",
		"## DEAL_FLOW_MA",
		"## DEAL_FLOW_VENTURE",
		"## DEAL_FLOW_IPO",
		"## DEAL_FLOW_SCOUTING",
		"## NYC_EVENTS",
		"## NYC_RESTAURANT",
		"## NYC_CALLOUT",
		"## CULTURE_SPORTS",
		"## CULTURE_MEME",
		"## CULTURE_INTERNET",
		"## READS_OF_THE_WEEK",
	}

	lastIdx := -1
	for _, marker := range markers {
		idx := strings.Index(result, marker)
		if idx < 0 {
			t.Errorf("Expected marker %q in skeleton", marker)
			continue
		}
		if idx < lastIdx {
			t.Errorf("Expected marker %q to appear after the previous one", marker)
		}
		lastIdx = idx
	}
}

func TestBuildUserMessageNoEmails(t *testing.T) {
	result := BuildUserMessage(nil, monday)

	if !strings.Contains(result, "Here are the newsletter emails received since the last issue:") {
		t.Error("Expected intro line even with no emails")
	}
	if !strings.Contains(result, "Please generate today's issue of The Drop") {
		t.Error("Expected generation instruction")
	}
}
