// Package s3 provides an NTX entry store backed by S3-compatible object
// storage. For production, point Config.Endpoint at your provider; tests
// use an in-process gofakes3 backend via TestStore.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/meigma/ntx/store"
)

// Config holds the configuration for creating an S3-backed store.
type Config struct {
	// Endpoint is the S3 endpoint URL. Leave empty to use default AWS S3.
	Endpoint string
	// Region is the AWS region (e.g., "auto" for Tigris, "us-east-1" for AWS).
	Region string
	// AccessKeyID is the S3 access key.
	AccessKeyID string
	// SecretAccessKey is the S3 secret key.
	SecretAccessKey string
	// Bucket is the bucket holding the pack entries.
	Bucket string
	// Prefix is prepended to entry names to form object keys, e.g.
	// "packs/manual/". May be empty.
	Prefix string
	// UsePathStyle enables path-style addressing (required for some
	// S3-compatible services, including gofakes3).
	UsePathStyle bool
}

// Store reads pack entries as S3 objects named Prefix + entry name.
type Store struct {
	client *awss3.Client
	bucket string
	prefix string
}

// New creates a Store with the given configuration.
func New(ctx context.Context, cfg Config) (*Store, error) {
	var opts []func(*config.LoadOptions) error

	opts = append(opts, config.WithRegion(cfg.Region))
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	sdkConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: failed to load AWS config: %w", err)
	}

	client := awss3.NewFromConfig(sdkConfig, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewFromClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewFromClient creates a Store from an existing S3 client.
// This is useful for testing with gofakes3.
func NewFromClient(client *awss3.Client, bucket, prefix string) *Store {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// ReadEntry implements store.Store.
func (s *Store) ReadEntry(ctx context.Context, name string) ([]byte, error) {
	if !store.ValidName(name) {
		return nil, fmt.Errorf("entry %q: %w", name, store.ErrInvalidName)
	}

	key := s.prefix + name
	result, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
			return nil, fmt.Errorf("entry %q: %w", name, store.ErrNotFound)
		}
		return nil, fmt.Errorf("entry %q: %w", name, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", name, store.ErrShortRead)
	}
	if result.ContentLength != nil && int64(len(data)) < *result.ContentLength {
		return nil, fmt.Errorf("entry %q: got %d of %d bytes: %w",
			name, len(data), *result.ContentLength, store.ErrShortRead)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("entry %q: %w", name, store.ErrEmpty)
	}
	return data, nil
}
