// Package gcs provides an artifact.Store backed by Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"presell/pkg/artifact"
	"strings"

	"cloud.google.com/go/storage"
)

// Options configure the GCS store.
type Options struct {
	// Bucket is the bucket objects are written to.
	Bucket string
	// PublicBaseURL, when set, prefixes the returned references instead of a
	// gs:// URI.
	PublicBaseURL string
}

// Store writes artifacts to a GCS bucket.
type Store struct {
	client  *storage.Client
	options Options
}

var _ artifact.Store = (*Store)(nil)

// New creates a GCS-backed store.
func New(client *storage.Client, options Options) (*Store, error) {
	if client == nil {
		return nil, errors.New("storage client is required")
	}
	if options.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}
	options.PublicBaseURL = strings.TrimSuffix(options.PublicBaseURL, "/")

	return &Store{client: client, options: options}, nil
}

// Put uploads r to the configured bucket.
func (s *Store) Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", errors.New("key is required")
	}

	writer := s.client.Bucket(s.options.Bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		writer.ContentType = contentType
	}
	if _, err := io.Copy(writer, r); err != nil {
		if closeErr := writer.Close(); closeErr != nil {
			return "", fmt.Errorf("could not copy object: %w (close writer: %w)", err, closeErr)
		}

		return "", fmt.Errorf("could not copy object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("could not close object writer: %w", err)
	}

	if s.options.PublicBaseURL != "" {
		return s.options.PublicBaseURL + "/" + key, nil
	}

	return fmt.Sprintf("gs://%s/%s", s.options.Bucket, key), nil
}
