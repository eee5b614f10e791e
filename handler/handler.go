package handler

import (
	"github.com/rs/zerolog"

	"screamer/identity"
	"screamer/store"
)

// Handler routes requests to the store and the identity provider.
// Both collaborators are injected so tests can run against fakes.
type Handler struct {
	Store    store.Store
	Identity identity.Provider
	Logger   zerolog.Logger
}
