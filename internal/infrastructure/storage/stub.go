package storage

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sahilrajputt12/catalog-extensions/internal/application/storefront"
)

var _ storefront.PublicFileStore = (*StubPublicFileStore)(nil)

// StubPublicFileStore is an in-memory PublicFileStore for development and
// tests. Files are "uploaded" by adding their keys.
type StubPublicFileStore struct {
	mu      sync.RWMutex
	keys    map[string]bool
	BaseURL string
}

// NewStubPublicFileStore creates a new StubPublicFileStore
func NewStubPublicFileStore() *StubPublicFileStore {
	return &StubPublicFileStore{
		keys:    make(map[string]bool),
		BaseURL: "https://storage.example.com",
	}
}

// Add registers a file key as existing
func (s *StubPublicFileStore) Add(fileKey string) {
	s.mu.Lock()
	s.keys[fileKey] = true
	s.mu.Unlock()
}

// Exists checks whether a file key was registered
func (s *StubPublicFileStore) Exists(ctx context.Context, fileKey string) (bool, error) {
	if fileKey == "" {
		return false, errors.New("file key is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys[fileKey], nil
}

// PublicURL returns the public URL for a file key
func (s *StubPublicFileStore) PublicURL(fileKey string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + strings.TrimPrefix(fileKey, "/")
}
