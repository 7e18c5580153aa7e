package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

const extractionPrompt = `Extract the following from the transcript and return ONLY valid JSON:
{
  "topics": [list of main discussion themes],
  "action_items": [list of tasks or follow-ups],
  "decisions": [list of key decisions],
  "sentiment": "positive" | "neutral" | "negative"
}

Transcript:
%s`

const summaryPrompt = `Summarize this meeting transcript in 2-3 clear sentences.
Focus on key decisions, actions, and overall tone.
Return only the summary text - no markdown, no explanations.

Transcript:
%s`

// Client is a minimal client for OpenAI-compatible chat and embedding APIs.
// It is constructed once at startup and injected wherever the pipeline needs
// language understanding; there is no package-level shared instance.
type Client struct {
	apiKey     string
	baseURL    string
	chatModel  string
	embedModel string
	maxElapsed time.Duration
	client     *http.Client
}

// NewClient creates a gateway client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.OpenAIConfig) *Client {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	base := "https://api.openai.com"
	chatModel := "gpt-4o-mini"
	embedModel := "text-embedding-3-small"
	timeout := 30 * time.Second
	maxElapsed := 30 * time.Second
	if cfg != nil {
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.ChatModel != "" {
			chatModel = cfg.ChatModel
		}
		if cfg.EmbedModel != "" {
			embedModel = cfg.EmbedModel
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
		if cfg.MaxElapsed > 0 {
			maxElapsed = cfg.MaxElapsed
		}
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(base, "/"),
		chatModel:  chatModel,
		embedModel: embedModel,
		maxElapsed: maxElapsed,
		client:     &http.Client{Timeout: timeout},
	}
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
}

// ChatResponse is a minimal chat completion response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// EmbeddingRequest is the shape for embedding requests
type EmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// EmbeddingResponse is a minimal embedding response shape
type EmbeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Extract asks the model for the structured extraction of a transcript and
// returns the raw assistant content.
func (c *Client) Extract(ctx context.Context, transcript string) (string, error) {
	return c.chat(ctx, fmt.Sprintf(extractionPrompt, transcript))
}

// Summarize asks the model for a short prose summary of a transcript.
func (c *Client) Summarize(ctx context.Context, transcript string) (string, error) {
	content, err := c.chat(ctx, fmt.Sprintf(summaryPrompt, transcript))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// Embed returns the embedding vector for the given text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	reqBody := EmbeddingRequest{
		Model: c.embedModel,
		Input: text,
	}

	var er EmbeddingResponse
	if err := c.post(ctx, "/v1/embeddings", reqBody, &er); err != nil {
		return nil, err
	}
	if len(er.Data) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return er.Data[0].Embedding, nil
}

func (c *Client) chat(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model:       c.chatModel,
		Messages:    []map[string]string{{"role": "user", "content": prompt}},
		Temperature: 0.3,
	}

	var cr ChatResponse
	if err := c.post(ctx, "/v1/chat/completions", reqBody, &cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return cr.Choices[0].Message.Content, nil
}

// post issues a JSON POST with bounded exponential backoff. Transport errors,
// 429 and 5xx responses are retried until the retry budget is spent; other
// client errors fail immediately.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("gateway returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			io.Copy(io.Discard, resp.Body)
			return backoff.Permanent(fmt.Errorf("gateway returned status %d", resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode gateway response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = c.maxElapsed

	return backoff.Retry(attempt, backoff.WithContext(bo, ctx))
}
