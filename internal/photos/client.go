// Package photos supplies the photo decks the game engine consumes: a
// remote archive API client and a curated SQLite catalog, both returning
// validated photoguessr.Photo slices.
package photos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// Client fetches photo decks from a remote archive API. It keeps the last
// successful deck so repeat loads without forceRefresh skip the network.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	now     func() time.Time

	mu     sync.Mutex
	cached []photoguessr.Photo
}

// NewClient creates a client for the archive API at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
		now:     time.Now,
	}
}

// Fetch returns a validated deck of photos. Photos that fail validation are
// dropped with a warning; an entirely invalid response is an error.
func (c *Client) Fetch(ctx context.Context, forceRefresh bool) ([]photoguessr.Photo, error) {
	if !forceRefresh {
		c.mu.Lock()
		cached := c.cached
		c.mu.Unlock()
		if len(cached) > 0 {
			return cached, nil
		}
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("photos: bad archive url: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(photoguessr.DeckSize))
	if forceRefresh {
		q.Set("refresh", "1")
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("photos: building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			return nil, fmt.Errorf("photos: network timeout fetching archive: %w", err)
		}
		return nil, fmt.Errorf("photos: network error fetching archive: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("photos: archive rate limit exceeded")
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("photos: archive server error (status %d)", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("photos: unexpected archive status %d", resp.StatusCode)
	}

	var raw []photoguessr.Photo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("photos: decoding archive response: %w", err)
	}

	now := c.now()
	valid := make([]photoguessr.Photo, 0, len(raw))
	for _, p := range raw {
		if err := p.Validate(now); err != nil {
			c.logger.Warn("dropping invalid archive photo", "error", err)
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("photos: no photos found in archive response")
	}

	c.mu.Lock()
	c.cached = valid
	c.mu.Unlock()
	return valid, nil
}
