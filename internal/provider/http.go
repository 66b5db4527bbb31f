package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"memberadmin/internal/domain"
)

// StatusError is returned when the endpoint answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

// HTTPProvider reads members with a single GET request
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider creates an HTTP provider. A nil client uses http.DefaultClient.
func NewHTTPProvider(url string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProvider{url: url, client: client}
}

// Source returns the endpoint URL
func (p *HTTPProvider) Source() string {
	return p.url
}

// Fetch performs the GET and decodes the body
func (p *HTTPProvider) Fetch(ctx context.Context) ([]domain.Member, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: p.url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return Decode(resp.Body)
}
