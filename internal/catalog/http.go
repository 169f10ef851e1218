package catalog

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/roadtrack/internal/codec"
	"github.com/alexanderramin/roadtrack/internal/domain"
)

// maxDocumentBytes caps how much of a response body is read.
const maxDocumentBytes = 4 << 20

// HTTPSource fetches catalog documents from <baseURL>/<catalog file>.
type HTTPSource struct {
	baseURL string
	http    *http.Client
}

// NewHTTPSource creates a source rooted at baseURL. A zero timeout leaves
// the request bounded only by the caller's context.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, track domain.Track) (*domain.Roadmap, error) {
	rm, err := s.fetch(ctx, track)
	if err != nil {
		return nil, &domain.CatalogFetchError{Track: track, Err: err}
	}
	return rm, nil
}

func (s *HTTPSource) fetch(ctx context.Context, track domain.Track) (*domain.Roadmap, error) {
	endpoint, err := url.JoinPath(s.baseURL, track.CatalogFile())
	if err != nil {
		return nil, fmt.Errorf("building catalog url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %s", endpoint, resp.Status)
	}
	return codec.Decode(io.LimitReader(resp.Body, maxDocumentBytes))
}
