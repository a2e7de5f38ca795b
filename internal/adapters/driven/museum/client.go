// Package museum provides an artwork fetcher backed by the Metropolitan
// Museum of Art collection API.
package museum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ArtworkFetcher = (*Client)(nil)

// Default configuration values.
const (
	// DefaultRateLimit stays well under the API's published 80 requests/second.
	DefaultRateLimit = 40.0
	DefaultTimeout   = 10 * time.Second

	// DefaultConcurrency bounds in-flight requests in FetchAll.
	DefaultConcurrency = 4

	// maxErrorBody limits how much of an error response is quoted.
	maxErrorBody = 512
)

// Config holds configuration for the collection API client.
type Config struct {
	// RateLimit is the maximum requests per second (default: 40).
	RateLimit float64

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// Concurrency bounds parallel requests in FetchAll (default: 4).
	Concurrency int

	// HTTPClient overrides the client used for requests. Its Timeout is
	// left untouched.
	HTTPClient *http.Client
}

// Client fetches object metadata from the collection API.
type Client struct {
	client      *http.Client
	limiter     *rate.Limiter
	concurrency int
}

// objectResponse is the subset of the /objects/{id} response used for a round.
type objectResponse struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectEndDate     int    `json:"objectEndDate"`
	Medium            string `json:"medium"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	Tags              []struct {
		Term string `json:"term"`
	} `json:"tags"`
}

// NewClient creates a collection API client.
func NewClient(cfg Config) *Client {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	burst := int(cfg.RateLimit)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		client:      client,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RateLimit), burst),
		concurrency: cfg.Concurrency,
	}
}

// Fetch retrieves metadata for a single object resource URL.
func (c *Client) Fetch(ctx context.Context, url string) (*domain.Artwork, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: object %s", domain.ErrNotFound, url)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("collection api error (status %d): %s", resp.StatusCode, string(body))
	}

	var obj objectResponse
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return obj.toArtwork(), nil
}

// FetchAll retrieves metadata for every URL concurrently. Results keep the
// order of urls. The first failure cancels the remaining requests.
func (c *Client) FetchAll(ctx context.Context, urls []string) ([]*domain.Artwork, error) {
	artworks := make([]*domain.Artwork, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, url := range urls {
		g.Go(func() error {
			artwork, err := c.Fetch(gCtx, url)
			if err != nil {
				return err
			}
			artworks[i] = artwork
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (o objectResponse) toArtwork() *domain.Artwork {
	tags := make([]string, 0, len(o.Tags))
	for _, t := range o.Tags {
		if t.Term != "" {
			tags = append(tags, t.Term)
		}
	}
	return &domain.Artwork{
		ObjectID: o.ObjectID,
		Title:    o.Title,
		Artist:   o.ArtistDisplayName,
		Year:     o.ObjectEndDate,
		Medium:   o.Medium,
		ImageURL: o.PrimaryImageSmall,
		Tags:     tags,
	}
}
