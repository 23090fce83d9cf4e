package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"google.golang.org/genai"
)

const (
	// DefaultModel is the default Gemini model for issue generation.
	DefaultModel = "gemini-2.5-flash"
	// DefaultMaxTokens bounds the length of a generated issue.
	DefaultMaxTokens = int32(16000)
)

// Client wraps the Gemini SDK for newsletter issue generation.
type Client struct {
	apiKey    string
	modelName string
	maxTokens int32
	gClient   *genai.Client
}

// NewClient creates a new LLM client.
// It supports multiple ways to get the API key (in order of preference):
// 1. Environment variable: GEMINI_API_KEY (or alternatives)
// 2. Viper configuration: ai.gemini.api_key
func NewClient(modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		if apiKey = os.Getenv("GOOGLE_GEMINI_API_KEY"); apiKey == "" {
			if apiKey = os.Getenv("GOOGLE_AI_API_KEY"); apiKey == "" {
				apiKey = viper.GetString("ai.gemini.api_key")
			}
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY environment variable or ai.gemini.api_key in config file.\nGet your API key from: https://makersuite.google.com/app/apikey")
	}

	if modelName == "" {
		modelName = viper.GetString("ai.gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}

	maxTokens := viper.GetInt32("ai.gemini.max_tokens")
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	ctx := context.Background()
	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		apiKey:    apiKey,
		modelName: modelName,
		maxTokens: maxTokens,
		gClient:   gClient,
	}, nil
}

// GenerateIssue sends the editorial brief and the day's source material to
// the model and returns the raw sectioned response.
func (c *Client) GenerateIssue(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if userMessage == "" {
		return "", fmt.Errorf("user message cannot be empty")
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: userMessage}},
		Role:  "user",
	}}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: c.maxTokens,
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate issue: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}

// GetModelName returns the model name used by this client.
func (c *Client) GetModelName() string {
	return c.modelName
}

// Close cleans up resources used by the client.
func (c *Client) Close() {
	// The SDK client doesn't require explicit close
}
