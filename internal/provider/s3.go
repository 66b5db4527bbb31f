package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"memberadmin/internal/domain"
)

// S3Client is the subset of the S3 API the provider uses
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Provider reads members from a single S3 object
type S3Provider struct {
	bucket string
	key    string

	mu     sync.Mutex
	client S3Client
}

// NewS3Provider creates an S3 provider. With a nil client one is built from
// the default AWS config on first fetch.
func NewS3Provider(bucket, key string, client S3Client) *S3Provider {
	return &S3Provider{bucket: bucket, key: key, client: client}
}

// Source returns the s3:// URL
func (p *S3Provider) Source() string {
	return fmt.Sprintf("s3://%s/%s", p.bucket, p.key)
}

// Fetch downloads and decodes the object
func (p *S3Provider) Fetch(ctx context.Context) ([]domain.Member, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(p.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", p.Source(), err)
	}
	defer resp.Body.Close()

	return Decode(resp.Body)
}

func (p *S3Provider) getClient(ctx context.Context) (S3Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	p.client = s3.NewFromConfig(cfg)
	return p.client, nil
}
