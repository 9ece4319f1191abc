// Package httpstore serves NTX entries over HTTP GET requests against a
// base URL, matching the pack producer's file layout ("<name>.bin").
package httpstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/meigma/ntx/store"
)

// Store fetches entries with one GET per entry from baseURL + "/" +
// name + ".bin".
type Store struct {
	base    string
	client  *http.Client
	headers http.Header
}

// Option configures a Store.
type Option func(*Store)

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(s *Store) {
		s.client = client
	}
}

// WithHeader sets a single header on each request.
func WithHeader(key, value string) Option {
	return func(s *Store) {
		if s.headers == nil {
			s.headers = make(http.Header)
		}
		s.headers.Set(key, value)
	}
}

// New creates a Store serving entries from baseURL.
func New(baseURL string, opts ...Option) *Store {
	s := &Store{
		base:   strings.TrimSuffix(baseURL, "/"),
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	return s
}

// ReadEntry implements store.Store.
func (s *Store) ReadEntry(ctx context.Context, name string) ([]byte, error) {
	if !store.ValidName(name) {
		return nil, fmt.Errorf("entry %q: %w", name, store.ErrInvalidName)
	}

	url := s.base + "/" + name + store.FileExt
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", name, err)
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return nil, fmt.Errorf("entry %q: %w", name, store.ErrNotFound)
	default:
		return nil, fmt.Errorf("entry %q: unexpected status %s", name, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", name, store.ErrShortRead)
	}
	if resp.ContentLength >= 0 && int64(len(data)) < resp.ContentLength {
		return nil, fmt.Errorf("entry %q: got %d of %d bytes: %w",
			name, len(data), resp.ContentLength, store.ErrShortRead)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("entry %q: %w", name, store.ErrEmpty)
	}
	return data, nil
}
