// Package wger is a read-only client for the wger exercise catalog. This
// collaborator degrades silently: a broken catalog never blocks a workout
// plan, it just produces an empty candidate list.
package wger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/katasiddartha-lang/health-coach-ai/internal/logger"
	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
)

const defaultBaseURL = "https://wger.de/api/v2"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Search fetches up to limit exercises. The query is accepted for API
// compatibility but the remote call filters by language only. Any failure
// returns an empty list, never an error.
func (c *Client) Search(ctx context.Context, query string, limit int) []model.Exercise {
	_ = query

	if limit <= 0 {
		limit = 20
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	url := fmt.Sprintf("%s/exercise/?language=2&limit=%d", baseURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Warning("wger: could not create request: %v", err)
		return []model.Exercise{}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Warning("wger: request failed: %v", err)
		return []model.Exercise{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warning("wger: API returned status %d", resp.StatusCode)
		return []model.Exercise{}
	}

	var parsed struct {
		Results []exerciseResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Warning("wger: could not decode response: %v", err)
		return []model.Exercise{}
	}

	exercises := make([]model.Exercise, 0, limit)
	for _, ex := range parsed.Results {
		if len(exercises) == limit {
			break
		}
		exercises = append(exercises, model.Exercise{
			ID:          ex.ID,
			Name:        ex.Name,
			Description: ex.Description,
			Category:    ex.Category,
			Equipment:   ex.Equipment,
		})
	}
	return exercises
}

type exerciseResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    int64   `json:"category"`
	Equipment   []int64 `json:"equipment"`
}
