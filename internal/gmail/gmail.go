// Package gmail wraps the Gmail API for The Drop's two accounts: the source
// account whose labeled newsletters get read, and the sender account that
// delivers the finished issue.
package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/r8slab/the-drop/internal/config"
	"github.com/r8slab/the-drop/internal/logger"
)

const user = "me"

// Client holds authenticated services for both Gmail accounts.
type Client struct {
	source     *gmail.Service
	sender     *gmail.Service
	labelRoot  string
	maxResults int64
}

// NewClient authenticates both accounts using the credential and token files
// from configuration. Missing tokens trigger the interactive OAuth flow.
func NewClient(ctx context.Context) (*Client, error) {
	gmailCfg := config.GetGmail()

	logger.Info("Authenticating with source account")
	source, err := newService(ctx, gmailCfg.Source.CredentialsFile, gmailCfg.Source.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate source account: %w", err)
	}

	logger.Info("Authenticating with sender account")
	sender, err := newService(ctx, gmailCfg.Sender.CredentialsFile, gmailCfg.Sender.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate sender account: %w", err)
	}

	return &Client{
		source:     source,
		sender:     sender,
		labelRoot:  gmailCfg.LabelRoot,
		maxResults: gmailCfg.MaxResults,
	}, nil
}

func newService(ctx context.Context, credentialsFile, tokenFile string) (*gmail.Service, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}
	oauthConfig, err := google.ConfigFromJSON(b, gmail.GmailModifyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	httpClient, err := getOAuthClient(ctx, oauthConfig, tokenFile)
	if err != nil {
		return nil, err
	}
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %w", err)
	}
	return srv, nil
}

func getOAuthClient(ctx context.Context, oauthConfig *oauth2.Config, tokenFile string) (*http.Client, error) {
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		tok, err = getTokenFromWeb(ctx, oauthConfig)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFile, tok); err != nil {
			return nil, err
		}
	}
	return oauthConfig.Client(ctx, tok), nil
}

func getTokenFromWeb(ctx context.Context, oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := oauthConfig.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return tok, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) error {
	logger.Info("Saving OAuth token", "path", path)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to save oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// ListNewsletterLabels returns the configured root label plus every label
// nested under it.
func (c *Client) ListNewsletterLabels() ([]string, error) {
	resp, err := c.source.Users.Labels.List(user).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	names := make([]string, 0, len(resp.Labels))
	for _, label := range resp.Labels {
		names = append(names, label.Name)
	}
	return filterNewsletterLabels(names, c.labelRoot), nil
}

// filterNewsletterLabels keeps the root label and labels nested below it.
// "Newsletters/Tech" matches root "Newsletters"; "NewslettersArchive" does
// not.
func filterNewsletterLabels(names []string, root string) []string {
	var matched []string
	for _, name := range names {
		if name == root || strings.HasPrefix(name, root+"/") {
			matched = append(matched, name)
		}
	}
	return matched
}

// BuildQuery assembles the Gmail search query for one fetch window. Labels
// combine into an OR group using Gmail's curly-brace syntax. An empty label
// list yields the empty query, which searches the whole mailbox without a
// time bound.
func BuildQuery(labels []string, after time.Time, includeRead bool) string {
	if len(labels) == 0 {
		return ""
	}

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("label:%q", label))
	}
	query := "{" + strings.Join(parts, " ") + "}"

	if !includeRead {
		query += " is:unread"
	}
	query += fmt.Sprintf(" after:%d", after.Unix())

	return query
}

// FetchNewsletters lists newsletter messages in the window and returns their
// full payloads. Messages that fail to fetch individually are logged and
// skipped.
func (c *Client) FetchNewsletters(after time.Time, includeRead bool) ([]*gmail.Message, error) {
	labels, err := c.ListNewsletterLabels()
	if err != nil {
		return nil, err
	}

	var query string
	if len(labels) == 0 {
		logger.Warn("No newsletter labels found in source account, searching all emails")
	} else {
		query = BuildQuery(labels, after, includeRead)
		logger.Info("Found newsletter labels", "count", len(labels))
	}

	logger.Info("Fetching emails from source account", "query", query)

	resp, err := c.source.Users.Messages.List(user).MaxResults(c.maxResults).Q(query).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*gmail.Message, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		full, err := c.source.Users.Messages.Get(user, msg.Id).Format("full").Do()
		if err != nil {
			logger.Error("Failed to fetch message", err, "id", msg.Id)
			continue
		}
		messages = append(messages, full)
	}

	return messages, nil
}

// Send delivers an HTML issue from the sender account.
func (c *Client) Send(to, subject, htmlBody string) error {
	raw := buildHTMLMessage(to, subject, htmlBody, uuid.NewString())
	if err := c.sendRaw(raw); err != nil {
		return err
	}
	logger.Info("Email sent from sender account", "to", to)
	return nil
}

// SendPlain delivers a plain-text message from the sender account.
func (c *Client) SendPlain(to, subject, body string) error {
	return c.sendRaw(buildPlainMessage(to, subject, body))
}

func (c *Client) sendRaw(raw string) error {
	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}
	if _, err := c.sender.Users.Messages.Send(user, message).Do(); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func buildHTMLMessage(to, subject, htmlBody, boundary string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary))
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return msg.String()
}

func buildPlainMessage(to, subject, body string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return msg.String()
}

// MarkRead clears the UNREAD label on each message in the source account.
// Individual failures are logged and skipped.
func (c *Client) MarkRead(ids []string) {
	for _, id := range ids {
		req := &gmail.ModifyMessageRequest{RemoveLabelIds: []string{"UNREAD"}}
		if _, err := c.source.Users.Messages.Modify(user, id, req).Do(); err != nil {
			logger.Error("Failed to mark message as read", err, "id", id)
		}
	}
	logger.Info("Marked emails as read in source account", "count", len(ids))
}
