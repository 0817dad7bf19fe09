package credential

import (
	"context"
	"errors"
	"sync"
)

// Storage keys shared with the mobile client.
const (
	KeyAuthToken    = "auth_token"
	KeyUserData     = "user_data"
	KeyInfluencerID = "influencer_id"
)

var (
	// ErrNotFound is returned when a key, or a complete record, is absent.
	ErrNotFound = errors.New("credential not found")
	// ErrCorrupt is returned when persisted data cannot be decoded.
	ErrCorrupt = errors.New("credential data corrupt")
)

// Store is durable string-keyed storage that survives process restarts.
// Removing a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore builds an in-memory store for testing.
func NewMemoryStore() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
