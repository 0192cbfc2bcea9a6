// Package storage provides the durable key/value medium backing the
// prediction collection and session state. The layout mirrors the
// original client's storage: one document per key, replaced wholesale
// on every write. There is no concurrency token; the last writer wins.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
)

// Well-known document keys.
const (
	KeyPredictions = "docai_predictions"
	KeyUser        = "docai_user"
	KeyOrganPledge = "docai_organ_pledge"
	KeyTheme       = "docai_theme"
)

// Store is the durable document store. Get reports found=false for an
// absent key; Set replaces the full document for a key.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open constructs the store selected by the configuration.
func Open(cfg domain.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "sqlite", "":
		return NewSQLiteStore(cfg.SQLitePath)
	case "postgres":
		return NewPostgresStoreFromURL(cfg.PostgresURL)
	case "redis":
		return NewRedisStore(cfg.RedisURL)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// MemoryStore is an in-process Store used by tests and as a fallback
// when no durable backend is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get retrieves a document by key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored document.
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set replaces the document for a key.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

// Delete removes the document for a key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Close releases resources. It is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
