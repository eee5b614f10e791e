// Package store holds scream and user documents. Handlers depend on
// the Store interface and receive a concrete implementation at
// construction time, so tests can swap in fakes.
package store

import (
	"context"
	"errors"

	"screamer/domain"
)

var ErrNotFound = errors.New("store: not found")

type Store interface {
	// Screams returns every scream ordered by creation time, newest
	// first.
	Screams(ctx context.Context) ([]domain.Scream, error)
	// AddScream stores a scream under a generated id and returns
	// that id.
	AddScream(ctx context.Context, scream domain.Scream) (string, error)
	// GetUser returns the user keyed by handle, or ErrNotFound.
	GetUser(ctx context.Context, handle string) (domain.User, error)
	// SetUser writes the user record keyed by its handle.
	SetUser(ctx context.Context, user domain.User) error
}
