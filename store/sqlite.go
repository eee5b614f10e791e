package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"screamer/domain"
)

type SQLite struct {
	DB *sql.DB
}

func NewSQLite(conn *sql.DB) *SQLite {
	return &SQLite{DB: conn}
}

func (s *SQLite) Screams(ctx context.Context) ([]domain.Scream, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT id, body, user_handle, created_at FROM screams ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying screams: %w", err)
	}
	defer rows.Close()

	screams := []domain.Scream{}
	for rows.Next() {
		sc := domain.Scream{}
		if err := rows.Scan(&sc.ID, &sc.Body, &sc.UserHandle, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning scream: %w", err)
		}
		screams = append(screams, sc)
	}
	return screams, rows.Err()
}

func (s *SQLite) AddScream(ctx context.Context, scream domain.Scream) (string, error) {
	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO screams (id, body, user_handle, created_at) VALUES ($1, $2, $3, $4)",
		id, scream.Body, scream.UserHandle, scream.CreatedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("inserting scream: %w", err)
	}
	return id, nil
}

func (s *SQLite) GetUser(ctx context.Context, handle string) (domain.User, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT handle, email, user_id, created_at FROM users WHERE handle = $1", handle)

	u := domain.User{}
	err := row.Scan(&u.Handle, &u.Email, &u.UserID, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scanning user %q: %w", handle, err)
	}
	return u, nil
}

func (s *SQLite) SetUser(ctx context.Context, user domain.User) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT OR REPLACE INTO users (handle, email, user_id, created_at) VALUES ($1, $2, $3, $4)",
		user.Handle, user.Email, user.UserID, user.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("writing user %q: %w", user.Handle, err)
	}
	return nil
}
