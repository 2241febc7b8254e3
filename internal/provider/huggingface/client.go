// Package huggingface wraps the Hugging Face Inference API for
// prompt-in/text-out generation. Analysis and workout planning share this
// one client and differ only in their GenerationSpec.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api-inference.huggingface.co"

// GenerationSpec parameterizes one generation call site.
type GenerationSpec struct {
	Model        string
	MaxNewTokens int
	Temperature  float64
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Generate sends prompt to the hosted model and returns the raw generated
// text. The credential is caller-supplied and used for this call only.
// Errors propagate; there is no retry and no fallback here.
func (c *Client) Generate(ctx context.Context, apiKey, prompt string, spec GenerationSpec) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", fmt.Errorf("missing inference API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	reqBody := generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens:   spec.MaxNewTokens,
			Temperature:    spec.Temperature,
			ReturnFullText: false,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal generation payload: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", baseURL, spec.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute generation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("generation request failed with status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("generation request failed with status %d", resp.StatusCode)
	}

	var parsed []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	if len(parsed) == 0 {
		return "", fmt.Errorf("generation response contained no candidates")
	}
	return parsed[0].GeneratedText, nil
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}
