// Package blob provides the S3-compatible object store client for doc-center.
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	blobopts "github.com/kart-io/doc-center/pkg/options/blob"
)

// Store uploads document files to an S3-compatible bucket.
type Store interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// Client implements Store on top of minio-go.
type Client struct {
	mc   *minio.Client
	opts *blobopts.Options
}

// New creates an object store client from the provided options.
func New(opts *blobopts.Options) (*Client, error) {
	if opts == nil {
		return nil, fmt.Errorf("blob options cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blob options: %w", err)
	}

	mc, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	return &Client{mc: mc, opts: opts}, nil
}

// Upload stores the object and returns its public URL.
func (c *Client) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, c.opts.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return c.ObjectURL(key), nil
}

// ObjectURL builds the public URL for an object. AWS endpoints use the
// virtual-hosted style; other S3-compatible stores use path style.
func (c *Client) ObjectURL(key string) string {
	if strings.HasSuffix(c.opts.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.opts.Bucket, c.opts.Region, key)
	}
	scheme := "http"
	if c.opts.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.opts.Endpoint, c.opts.Bucket, key)
}
