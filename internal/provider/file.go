package provider

import (
	"context"
	"fmt"
	"os"

	"memberadmin/internal/domain"
)

// FileProvider reads members from a local JSON file
type FileProvider struct {
	path string
}

// NewFileProvider creates a file provider
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Source returns the file path
func (p *FileProvider) Source() string {
	return p.path
}

// Fetch reads and decodes the file
func (p *FileProvider) Fetch(ctx context.Context) ([]domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open members file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
