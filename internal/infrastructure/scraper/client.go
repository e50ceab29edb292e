package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/nutresa-radar/backend/internal/domain"
)

// Client talks to the external price-scraper backend, the service that
// actually crawls the retail sites. This side only ships a query and a
// store list and decodes the product rows that come back; retry and
// per-site timeout policy beyond the basics here belongs to the
// backend itself.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	maxRetries  int
	debug       bool
}

// searchPayload is the request body of the backend's /search endpoint.
type searchPayload struct {
	Query      string   `json:"query"`
	Mode       string   `json:"mode"`
	Stores     []string `json:"stores"`
	LocationID string   `json:"locationId,omitempty"`
}

// NewClient creates a scraper backend client.
func NewClient(apiKey, baseURL string, timeout time.Duration, maxRetries int) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}

	// The backend throttles callers at ~2 requests per second; keep a
	// small burst so a pareto batch ramps up without tripping it.
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		maxRetries:  maxRetries,
	}
}

// SetDebug enables request/response logging.
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// Search runs one query against the backend across the given stores.
func (c *Client) Search(
	ctx context.Context,
	query string,
	mode domain.SearchMode,
	storeIDs []string,
	locationID string,
) (*domain.ScrapeResponse, error) {
	if c.debug {
		log.Printf("[SCRAPER] Search %q mode=%s stores=%v", query, mode, storeIDs)
	}

	body, err := json.Marshal(searchPayload{
		Query:      query,
		Mode:       string(mode),
		Stores:     storeIDs,
		LocationID: locationID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/search", c.baseURL)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		response, err := c.doRequest(ctx, endpoint, body)
		if err != nil {
			if c.debug {
				log.Printf("[SCRAPER] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if !sleepBackoff(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		payload, readErr := io.ReadAll(response.Body)
		response.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response: %w", readErr)
			if !sleepBackoff(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		if response.StatusCode == http.StatusNotFound {
			return nil, domain.ErrNoResults
		}
		if response.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[SCRAPER] Status %d (attempt %d): %s", response.StatusCode, attempt, string(payload))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrScraperFailure, response.StatusCode)
			if !sleepBackoff(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		var result domain.ScrapeResponse
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[SCRAPER] %d products for %q", len(result.Products), query)
		}
		return &result, nil
	}

	return nil, lastErr
}

// doRequest executes one POST with auth headers.
func (c *Client) doRequest(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "NutresaRadar/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScraperFailure, err)
	}
	return resp, nil
}

// sleepBackoff waits attempt*500ms between retries, honoring
// cancellation. Returns false when the context ended.
func sleepBackoff(ctx context.Context, attempt int) bool {
	timer := time.NewTimer(time.Duration(attempt*500) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
