// Package provider fetches the member collection from where it lives and
// hands it to the view-model exactly once.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"memberadmin/internal/domain"
)

// DefaultSource is the public members endpoint
const DefaultSource = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"

// Provider returns the raw member collection
type Provider interface {
	Fetch(ctx context.Context) ([]domain.Member, error)
	Source() string
}

// New picks a provider for the source string: http(s) URL, s3://bucket/key,
// or a local file path (optionally file://).
func New(source string) (Provider, error) {
	if source == "" {
		source = DefaultSource
	}

	u, err := url.Parse(source)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// plain path (a one-letter scheme is a Windows drive)
		return NewFileProvider(source), nil
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTPProvider(source, nil), nil
	case "s3":
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("invalid s3 source %q: want s3://bucket/key", source)
		}
		return NewS3Provider(u.Host, key, nil), nil
	case "file":
		path := u.Path
		if u.Host != "" {
			path = u.Host + u.Path
		}
		return NewFileProvider(path), nil
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

// Decode reads a JSON array of member objects
func Decode(r io.Reader) ([]domain.Member, error) {
	var records []domain.Member
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse members: %w", err)
	}
	if records == nil {
		records = []domain.Member{}
	}
	return records, nil
}
