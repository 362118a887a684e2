package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/schema"
)

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// CreateUser stores a new user with a hashed password.
func (s *PostgresStore) CreateUser(ctx context.Context, username, password string) (schema.User, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return schema.User{}, err
	}

	user := schema.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hashed,
	}

	if _, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.Password); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schema.User{}, ErrUsernameTaken
		}
		return schema.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// GetUser returns a user by ID.
func (s *PostgresStore) GetUser(ctx context.Context, id string) (schema.User, error) {
	return s.queryUser(ctx, `SELECT id, username, password FROM users WHERE id = $1`, id)
}

// GetUserByUsername returns a user by username.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (schema.User, error) {
	return s.queryUser(ctx, `SELECT id, username, password FROM users WHERE username = $1`, username)
}

func (s *PostgresStore) queryUser(ctx context.Context, query string, arg any) (schema.User, error) {
	var user schema.User
	err := s.pool.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schema.User{}, ErrNotFound
		}
		return schema.User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// Close releases database resources.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
