package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxErrorBody caps how much of an error response ends up in the error message
const maxErrorBody = 512

// HTTPSource reads records from the upstream REST API
type HTTPSource struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPSource creates an API-backed source
func NewHTTPSource(baseURL, token string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPSource{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request makes a GET request for path and returns the parsed JSON body
func (s *HTTPSource) Request(ctx context.Context, path string) (interface{}, error) {
	url := s.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	return decodeJSON(resp.Body)
}

// Close releases idle connections
func (s *HTTPSource) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}
