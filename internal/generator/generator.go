// Package generator drives the end-to-end pipeline: fetch newsletters,
// normalize them, prompt the model, assemble the HTML issue, and deliver it.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/gmail/v1"

	"github.com/r8slab/the-drop/internal/config"
	"github.com/r8slab/the-drop/internal/core"
	"github.com/r8slab/the-drop/internal/logger"
	"github.com/r8slab/the-drop/internal/market"
	"github.com/r8slab/the-drop/internal/normalize"
	"github.com/r8slab/the-drop/internal/prompt"
	"github.com/r8slab/the-drop/internal/sections"
	"github.com/r8slab/the-drop/internal/templates"
)

// Mailer defines the Gmail operations the generator needs.
type Mailer interface {
	FetchNewsletters(after time.Time, includeRead bool) ([]*gmail.Message, error)
	Send(to, subject, htmlBody string) error
	SendPlain(to, subject, body string) error
	MarkRead(ids []string)
}

// Model defines the LLM operations the generator needs.
type Model interface {
	GenerateIssue(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetModelName() string
}

// Archive defines the persistence operations the generator needs.
type Archive interface {
	LastRun() (time.Time, error)
	SaveLastRun(t time.Time) error
	SaveIssue(issue core.Issue) error
}

// Options control a single generation run.
type Options struct {
	Preview     bool   // Write the issue to a local file instead of sending
	PreviewFile string // Preview output path (default preview.html)
	DaysBack    int    // Fetch window in days; 0 means since the last run
	IncludeRead bool   // Include already-read newsletters
}

// Generator runs the pipeline against a Gmail client, an LLM client, and the
// issue archive.
type Generator struct {
	mail    Mailer
	model   Model
	archive Archive
}

// New creates a generator from its three dependencies.
func New(mail Mailer, model Model, archive Archive) *Generator {
	return &Generator{
		mail:    mail,
		model:   model,
		archive: archive,
	}
}

// Run executes the pipeline once. A failure on the send path triggers a
// best-effort notification email; the original error is returned either way.
func (g *Generator) Run(ctx context.Context, opts Options) error {
	if err := g.run(ctx, opts); err != nil {
		logger.Error("Generation failed", err)
		if !opts.Preview {
			g.notifyFailure(err)
		}
		return err
	}
	return nil
}

func (g *Generator) run(ctx context.Context, opts Options) error {
	now := time.Now()
	logger.Info("Starting The Drop generation")

	lastRun, err := g.archive.LastRun()
	if err != nil {
		return fmt.Errorf("failed to read last run time: %w", err)
	}
	after := windowStart(now, opts.DaysBack, lastRun, config.GetGmail().LookbackDays)

	logger.Info("Fetching newsletters", "after", after.Format(time.RFC3339))
	messages, err := g.mail.FetchNewsletters(after, opts.IncludeRead)
	if err != nil {
		return err
	}

	emails := normalizeMessages(messages)
	logger.Info("Found newsletters", "count", len(emails))
	if len(emails) == 0 {
		logger.Info("No new emails to process")
		return nil
	}

	marketImage := market.FindImage(emails)
	if marketImage != "" {
		logger.Info("Found market image", "url", marketImage)
	}

	logger.Info("Generating issue with Gemini", "model", g.model.GetModelName())
	genCtx, cancel := context.WithTimeout(ctx, generationTimeout())
	defer cancel()
	response, err := g.model.GenerateIssue(genCtx, prompt.SystemPrompt, prompt.BuildUserMessage(emails, now))
	if err != nil {
		return err
	}

	parsed := sections.Parse(response)
	logger.Info("Parsed sections from model response", "count", len(parsed))

	logger.Info("Assembling HTML")
	html := templates.Assemble(parsed, marketImage, now, config.GetHeaderImage())

	subject := strings.TrimSpace(parsed["EMAIL_SUBJECT"])
	if subject == "" {
		logger.Warn("No EMAIL_SUBJECT generated, using default subject")
		subject = defaultSubject(now)
	}

	if opts.Preview {
		return writePreview(opts.PreviewFile, html, subject)
	}

	sendTo := config.GetSendTo()
	if sendTo == "" {
		return fmt.Errorf("send_to is not configured. Set SEND_TO environment variable or email.send_to in config file")
	}

	logger.Info("Sending email", "subject", subject)
	if err := g.mail.Send(sendTo, subject, html); err != nil {
		return err
	}

	logger.Info("Marking emails as read")
	g.mail.MarkRead(contributorIDs(emails))

	if err := g.archive.SaveLastRun(now); err != nil {
		return fmt.Errorf("failed to save last run time: %w", err)
	}

	issue := core.Issue{
		ID:            uuid.NewString(),
		Subject:       subject,
		HTML:          html,
		Sections:      sections.Names(parsed),
		EmailCount:    len(emails),
		MarketImage:   marketImage,
		ModelUsed:     g.model.GetModelName(),
		DateGenerated: now,
	}
	if err := g.archive.SaveIssue(issue); err != nil {
		return fmt.Errorf("failed to archive issue: %w", err)
	}

	logger.Info("The Drop sent successfully", "issue_id", issue.ID)
	return nil
}

// notifyFailure emails a plain-text failure notice. Notification problems are
// logged and swallowed so the run error stays the one reported.
func (g *Generator) notifyFailure(runErr error) {
	sendTo := config.GetSendTo()
	if sendTo == "" {
		logger.Error("Cannot send failure notification, SEND_TO not set", nil)
		return
	}

	body := fmt.Sprintf("The Drop failed to generate.\n\nError: %s", runErr)
	if err := g.mail.SendPlain(sendTo, "The Drop: Generation Failed", body); err != nil {
		logger.Error("Failed to send failure notification", err)
		return
	}
	logger.Info("Failure notification sent")
}

// normalizeMessages parses each fetched message, skipping the ones that
// cannot be normalized.
func normalizeMessages(messages []*gmail.Message) []core.Email {
	emails := make([]core.Email, 0, len(messages))
	for _, msg := range messages {
		email, err := normalize.ParseMessage(msg)
		if err != nil {
			logger.Warn("Skipping unparseable message", "error", err.Error())
			continue
		}
		emails = append(emails, email)
	}
	return emails
}

// windowStart picks the beginning of the fetch window. An explicit days-back
// value wins; otherwise the window starts at the last recorded run, falling
// back to the configured lookback on a first run.
func windowStart(now time.Time, daysBack int, lastRun time.Time, lookbackDays int) time.Time {
	if daysBack > 0 {
		return now.AddDate(0, 0, -daysBack)
	}
	if lastRun.IsZero() {
		return now.AddDate(0, 0, -lookbackDays)
	}
	return lastRun
}

func defaultSubject(now time.Time) string {
	return "Today's Drop: " + now.Format("January 02")
}

func contributorIDs(emails []core.Email) []string {
	ids := make([]string, 0, len(emails))
	for _, email := range emails {
		ids = append(ids, email.ID)
	}
	return ids
}

func writePreview(path, html, subject string) error {
	if path == "" {
		path = "preview.html"
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write preview file: %w", err)
	}
	logger.Info("Preview saved", "path", path, "subject", subject)
	if abs, err := filepath.Abs(path); err == nil {
		logger.Info("Open in browser", "url", "file://"+abs)
	}
	return nil
}

// generationTimeout parses the configured Gemini timeout, defaulting to two
// minutes.
func generationTimeout() time.Duration {
	timeout, err := time.ParseDuration(config.GetAI().Gemini.Timeout)
	if err != nil || timeout <= 0 {
		return 2 * time.Minute
	}
	return timeout
}
