package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// --- Anthropic ---

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generateAnthropic(ctx context.Context, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	body := anthropicRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  []chatMessage{{Role: "user", Content: req.Prompt}},
	}

	respBody, err := c.post(ctx, "https://api.anthropic.com/v1/messages", body, map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": "2023-06-01",
	})
	if err != nil {
		return nil, err
	}

	var result anthropicResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}
	if result.Error != nil {
		return nil, output.NewSystemError("API error: " + result.Error.Message)
	}

	var content strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}
	if content.Len() == 0 {
		return nil, output.NewSystemError("empty response from API")
	}

	return &Response{Content: content.String(), Model: c.model}, nil
}

// --- OpenAI-compatible (openai.com and local servers) ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generateOpenAI(ctx context.Context, req Request) (*Response, error) {
	return c.generateChat(ctx, "https://api.openai.com/v1/chat/completions", req, map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	})
}

func (c *Client) generateLocal(ctx context.Context, req Request) (*Response, error) {
	return c.generateChat(ctx, localServerURL()+"/chat/completions", req, nil)
}

func (c *Client) generateChat(ctx context.Context, url string, req Request, headers map[string]string) (*Response, error) {
	var messages []chatMessage
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body := chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	respBody, err := c.post(ctx, url, body, headers)
	if err != nil {
		return nil, err
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}
	if result.Error != nil {
		return nil, output.NewSystemError("API error: " + result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, output.NewSystemError("empty response from API")
	}

	return &Response{Content: result.Choices[0].Message.Content, Model: c.model}, nil
}

// --- Google Gemini ---

type googleRequest struct {
	Contents       []googleContent `json:"contents"`
	SystemInstruct *googleContent  `json:"systemInstruction,omitempty"`
	Config         *googleGenCfg   `json:"generationConfig,omitempty"`
}

type googleContent struct {
	Parts []googlePart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleGenCfg struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

type googleResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generateGoogle(ctx context.Context, req Request) (*Response, error) {
	body := googleRequest{
		Contents: []googleContent{{
			Parts: []googlePart{{Text: req.Prompt}},
			Role:  "user",
		}},
	}
	if req.System != "" {
		body.SystemInstruct = &googleContent{Parts: []googlePart{{Text: req.System}}}
	}
	if req.MaxTokens > 0 || req.Temperature > 0 {
		body.Config = &googleGenCfg{MaxOutputTokens: req.MaxTokens, Temperature: req.Temperature}
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", c.model)
	respBody, err := c.post(ctx, url, body, map[string]string{"x-goog-api-key": c.apiKey})
	if err != nil {
		return nil, err
	}

	var result googleResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}
	if result.Error != nil {
		return nil, output.NewSystemError("API error: " + result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, output.NewSystemError("empty response from API")
	}

	var content strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		content.WriteString(part.Text)
	}

	return &Response{Content: content.String(), Model: c.model}, nil
}
