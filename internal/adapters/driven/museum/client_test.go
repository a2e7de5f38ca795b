package museum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

const objectJSON = `{
  "objectID": 436524,
  "title": "Sunflowers",
  "artistDisplayName": "Vincent van Gogh",
  "objectEndDate": 1887,
  "medium": "Oil on canvas",
  "primaryImageSmall": "https://images.metmuseum.org/small.jpg",
  "department": "European Paintings",
  "tags": [{"term": "Sunflowers"}, {"term": "Still Life"}]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestClient_Fetch(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/collection/v1/objects/436524", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(objectJSON))
	})

	client := NewClient(Config{})
	artwork, err := client.Fetch(context.Background(), server.URL+"/public/collection/v1/objects/436524")
	require.NoError(t, err)

	assert.Equal(t, &domain.Artwork{
		ObjectID: 436524,
		Title:    "Sunflowers",
		Artist:   "Vincent van Gogh",
		Year:     1887,
		Medium:   "Oil on canvas",
		ImageURL: "https://images.metmuseum.org/small.jpg",
		Tags:     []string{"Sunflowers", "Still Life"},
	}, artwork)
	assert.Equal(t, "Title: Sunflowers. Medium: Oil on canvas. Contains: Sunflowers, Still Life.", artwork.AltText())
}

func TestClient_Fetch_NullTags(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"objectID": 1, "title": "Untitled", "medium": "Tempera", "tags": null}`))
	})

	artwork, err := NewClient(Config{}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, artwork.Tags)
	assert.Equal(t, "Title: Untitled. Medium: Tempera.", artwork.AltText())
}

func TestClient_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Not a valid object"}`, wantErr: domain.ErrNotFound},
		{name: "server error", status: http.StatusBadGateway, body: "upstream down", wantMsg: "status 502"},
		{name: "bad json", status: http.StatusOK, body: "<html>", wantMsg: "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := NewClient(Config{}).Fetch(context.Background(), server.URL)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestClient_FetchAll_KeepsOrder(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/objects/")
		// Later objects answer first.
		if id == "1" {
			time.Sleep(20 * time.Millisecond)
		}
		_, _ = w.Write([]byte(`{"objectID": ` + id + `, "title": "T` + id + `"}`))
	})

	urls := []string{server.URL + "/objects/1", server.URL + "/objects/2", server.URL + "/objects/3", server.URL + "/objects/4"}
	artworks, err := NewClient(Config{}).FetchAll(context.Background(), urls)
	require.NoError(t, err)
	require.Len(t, artworks, 4)
	for i, a := range artworks {
		assert.Equal(t, i+1, a.ObjectID)
	}
}

func TestClient_FetchAll_Error(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/2") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"objectID": 1}`))
	})

	_, err := NewClient(Config{}).FetchAll(context.Background(), []string{server.URL + "/1", server.URL + "/2"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_FetchAll_Empty(t *testing.T) {
	artworks, err := NewClient(Config{}).FetchAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, artworks)
}

func TestClient_RespectsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	})

	urls := make([]string, 8)
	for i := range urls {
		urls[i] = server.URL
	}
	_, err := NewClient(Config{Concurrency: 2}).FetchAll(context.Background(), urls)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestClient_CancelledContext(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(Config{}).Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})
	assert.Equal(t, DefaultConcurrency, c.concurrency)
	assert.Equal(t, DefaultTimeout, c.client.Timeout)
	assert.InDelta(t, DefaultRateLimit, float64(c.limiter.Limit()), 1e-9)

	custom := &http.Client{}
	c = NewClient(Config{HTTPClient: custom, RateLimit: 0.5})
	assert.Same(t, custom, c.client)
	assert.Equal(t, 1, c.limiter.Burst())
}
