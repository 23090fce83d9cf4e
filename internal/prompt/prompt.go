// Package prompt builds the generation request sent to the model: a standing
// editorial brief plus a user message carrying today's date, the target issue
// density and every source email in a compact block format.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/r8slab/the-drop/internal/core"
)

const (
	// maxContentChars caps how much of each email body goes into the prompt.
	maxContentChars = 2000
	// maxPromptLinks caps how many links are quoted per email.
	maxPromptLinks = 10

	dateLayout = "Monday, January 02, 2006"
)

// SystemPrompt is the standing editorial brief for The Drop. It travels as
// the system instruction on every generation call.
const SystemPrompt = `You are the editor of The Drop, a daily morning digest for a New York reader working across finance, pharma, and tech. Your job is to read the day's newsletters and compress them into one sharp, skimmable issue.

VOICE AND STYLE:
- Punchy and conversational, never breathless. Dry wit over exclamation points.
- Lead with the number or the name. "Nvidia added $277B in market cap" beats "There was big news for Nvidia".
- No filler phrases, no hedging, no emoji.
- Assume a smart reader: explain the stakes, not the basics.

FORMATTING RULES:
- Bullets start with "- " and each bullet is a single line.
- Bold key names and figures with **double asterisks**.
- Write links in markdown form: [label](url). Only use URLs that appear in the source emails.
- DEAL_FLOW_SCOUTING bullets end with "Why it matters: ..." explaining the angle for an investor.
- READS_OF_THE_WEEK entries use the form: **[Title](url)** · Source · one-line description. Append [PAYWALL] when the source is paywalled.
- NYC_CALLOUT is for a notable opening or one-off happening; output "NONE" when there isn't one.

EDITING RULES:
- Deduplicate: when several newsletters cover the same story, write it once with the strongest facts.
- Attribute numbers to their source when sources disagree.
- Skip sponsored content and subscription upsells entirely.
- Match the issue density given in the user message.`

const emailBlockTemplate = `
---
FROM: %s
SUBJECT: %s
DATE: %s

CONTENT:
%s

LINKS:
%s
---
`

const userMessageTemplate = `
Today is %s.

This is a %s issue, so it should be %s.

Here are the newsletter emails received since the last issue:

%s

Please generate today's issue of The Drop based on these sources. Output the content for each section in a structured format that I can inject into the HTML template.

Format your response as:

## EMAIL_SUBJECT
[punchy subject line, max 60 chars, format: "Today's Drop: [headline]"]

## GOOD_MORNING
[content]

## BEFORE_THE_BELL_MARKETS
[bullets]

## BEFORE_THE_BELL_EARNINGS_LAST
[bullets]

## BEFORE_THE_BELL_EARNINGS_UPCOMING
[content]

## HEADLINE_ROUNDUP
[bullets]

## PHARMA_HEALTH_INTEL
[bullets]

## TECH_AI
[bullets]

## DEAL_FLOW_MA
[bullets]

## DEAL_FLOW_VENTURE
[bullets]

## DEAL_FLOW_IPO
[bullets]

## DEAL_FLOW_SCOUTING
[bullets with "Why it matters"]

## NYC_EVENTS
[bullets]

## NYC_RESTAURANT
[recommendation]

## NYC_CALLOUT
[optional: new opening or special callout, or "NONE"]

## CULTURE_SPORTS
[bullets]

## CULTURE_MEME
[description and context for meme of the week]

## CULTURE_INTERNET
[bullets]

## READS_OF_THE_WEEK
[bullets with source and one-line description]
`

// BuildUserMessage renders the user message for one generation run. Monday
// issues ask for a denser read than mid-week ones, and each email is quoted
// with truncated content plus its first links.
func BuildUserMessage(emails []core.Email, now time.Time) string {
	var summaries strings.Builder
	for _, email := range emails {
		summaries.WriteString(emailBlock(email))
	}

	cadence := "mid-week"
	density := "lighter (5-7 min read, 40-50 items)"
	if now.Weekday() == time.Monday {
		cadence = "Monday"
		density = "denser (8-10 min read, 55-65 items)"
	}

	return fmt.Sprintf(userMessageTemplate, now.Format(dateLayout), cadence, density, summaries.String())
}

func emailBlock(email core.Email) string {
	text := email.Text
	if len(text) > maxContentChars {
		text = text[:maxContentChars]
	}

	links := email.Links
	if len(links) > maxPromptLinks {
		links = links[:maxPromptLinks]
	}
	linkLines := make([]string, 0, len(links))
	for _, link := range links {
		linkLines = append(linkLines, fmt.Sprintf("- %s: %s", link.Label, link.URL))
	}

	return fmt.Sprintf(emailBlockTemplate, email.From, email.Subject, email.Date, text, strings.Join(linkLines, "\n"))
}
