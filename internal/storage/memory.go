package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/schema"
)

// InMemoryStore is a thread-safe store used when a database is not configured.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]schema.User
}

// NewInMemoryStore constructs an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]schema.User)}
}

// CreateUser stores a new user with a hashed password.
func (s *InMemoryStore) CreateUser(_ context.Context, username, password string) (schema.User, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return schema.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return schema.User{}, ErrUsernameTaken
		}
	}

	user := schema.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hashed,
	}
	s.users[user.ID] = user
	return user, nil
}

// GetUser returns a user by ID.
func (s *InMemoryStore) GetUser(_ context.Context, id string) (schema.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return schema.User{}, ErrNotFound
	}
	return user, nil
}

// GetUserByUsername returns a user by username.
func (s *InMemoryStore) GetUserByUsername(_ context.Context, username string) (schema.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return schema.User{}, ErrNotFound
}

// Close satisfies the Store interface.
func (s *InMemoryStore) Close() {}
