// Package llm provides a minimal multi-provider text-generation client.
// Every call is a single synchronous round trip: no streaming, no retries,
// no multi-turn state.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// Provider identifies a generation backend.
type Provider string

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	ProviderLocal     Provider = "local"
)

// Request is a single completion request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64 // 0 uses the provider default
	MaxTokens   int     // 0 uses the provider default
}

// Response is a completion result.
type Response struct {
	Content string
	Model   string
}

// HTTPDoer is the HTTP surface the client needs; inject test doubles here.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a provider-agnostic generation client.
type Client struct {
	provider   Provider
	model      string
	apiKey     string
	httpClient HTTPDoer
}

// New creates a client for the given model. When provider is empty it is
// inferred from the model name; shorthand aliases like "haiku" or "flash"
// expand to full model names. Request deadlines come from the caller's
// context, not an internal timeout.
func New(model string, provider Provider) (*Client, error) {
	if provider == "" {
		provider = inferProvider(model)
	}

	model = resolveAlias(provider, model)

	apiKey, err := apiKeyFor(provider)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider:   provider,
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}, nil
}

// WithHTTPDoer replaces the HTTP client (tests).
func (c *Client) WithHTTPDoer(doer HTTPDoer) *Client {
	c.httpClient = doer
	return c
}

// Model returns the resolved model name.
func (c *Client) Model() string {
	return c.model
}

// Generate performs a single completion round trip.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	switch c.provider {
	case ProviderAnthropic:
		return c.generateAnthropic(ctx, req)
	case ProviderOpenAI:
		return c.generateOpenAI(ctx, req)
	case ProviderGoogle:
		return c.generateGoogle(ctx, req)
	case ProviderLocal:
		return c.generateLocal(ctx, req)
	default:
		return nil, output.NewUserError(fmt.Sprintf("unsupported provider: %s", c.provider))
	}
}

// providerHint maps model-name substrings to providers; first match wins.
var providerHints = []struct {
	substring string
	provider  Provider
}{
	{"claude", ProviderAnthropic},
	{"haiku", ProviderAnthropic},
	{"sonnet", ProviderAnthropic},
	{"opus", ProviderAnthropic},
	{"gpt", ProviderOpenAI},
	{"gemini", ProviderGoogle},
	{"flash", ProviderGoogle},
	{"local", ProviderLocal},
	{"llama", ProviderLocal},
	{"qwen", ProviderLocal},
}

// inferProvider guesses the provider from the model name.
func inferProvider(model string) Provider {
	lower := strings.ToLower(model)
	for _, hint := range providerHints {
		if strings.Contains(lower, hint.substring) {
			return hint.provider
		}
	}
	return ProviderAnthropic
}

// Shorthand aliases; unknown names pass through unchanged.
var modelAliases = map[Provider]map[string]string{
	ProviderAnthropic: {
		"haiku":  "claude-haiku-4-5-20251001",
		"sonnet": "claude-sonnet-4-5-20250929",
	},
	ProviderOpenAI: {
		"gpt":  "gpt-5.2",
		"mini": "gpt-5-mini",
	},
	ProviderGoogle: {
		"flash": "gemini-3-flash-preview",
		"pro":   "gemini-3-pro-preview",
	},
	ProviderLocal: {
		"local": "default",
	},
}

func resolveAlias(provider Provider, model string) string {
	if aliases, ok := modelAliases[provider]; ok {
		if full, ok := aliases[strings.ToLower(model)]; ok {
			return full
		}
	}
	return model
}

// envVarByProvider maps providers to their API key environment variables.
// The local provider needs no key.
var envVarByProvider = map[Provider]string{
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderGoogle:    "GOOGLE_API_KEY",
	ProviderLocal:     "",
}

func apiKeyFor(provider Provider) (string, error) {
	envVar, ok := envVarByProvider[provider]
	if !ok {
		return "", output.NewUserError(fmt.Sprintf("unsupported provider: %s", provider))
	}
	if envVar == "" {
		return "not-needed", nil
	}
	key := os.Getenv(envVar)
	if key == "" {
		return "", output.NewUserError(envVar + " environment variable not set")
	}
	return key, nil
}

// localServerURL returns the OpenAI-compatible local server base URL
// (LM Studio default).
func localServerURL() string {
	if url := os.Getenv("LOCAL_LLM_URL"); url != "" {
		return url
	}
	return "http://localhost:1234/v1"
}

// post performs an HTTP POST with a JSON body and returns the raw response.
func (c *Client) post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		errBody := string(respBody)
		if len(errBody) > 500 {
			errBody = errBody[:500]
		}
		return nil, output.NewSystemError(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, errBody))
	}

	return respBody, nil
}
