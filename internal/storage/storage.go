// Package storage provides the key/value user store. The search and
// visualize flows do not persist anything; the history tables exist in the
// schema for future use but no handler writes them.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/schema"
)

// ErrNotFound indicates that a user could not be located in the backing store.
var ErrNotFound = errors.New("user not found")

// ErrUsernameTaken indicates a username collision on create.
var ErrUsernameTaken = errors.New("username already taken")

// Store defines the persistence behaviors the application relies on.
type Store interface {
	CreateUser(ctx context.Context, username, password string) (schema.User, error)
	GetUser(ctx context.Context, id string) (schema.User, error)
	GetUserByUsername(ctx context.Context, username string) (schema.User, error)
	Close()
}

// NewStore selects a backing store based on whether a database URL is provided.
func NewStore(ctx context.Context, databaseURL string) (Store, error) {
	if databaseURL == "" {
		return NewInMemoryStore(), nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
        id TEXT PRIMARY KEY,
        username TEXT NOT NULL UNIQUE,
        password TEXT NOT NULL
    )`,
		`CREATE TABLE IF NOT EXISTS search_history (
        id TEXT PRIMARY KEY,
        query TEXT NOT NULL,
        result_count INTEGER NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
		`CREATE TABLE IF NOT EXISTS room_visualizations (
        id TEXT PRIMARY KEY,
        original_image_url TEXT NOT NULL,
        processed_image_url TEXT NOT NULL,
        furniture_items TEXT[],
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
