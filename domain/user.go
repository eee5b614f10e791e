package domain

import (
	"time"
)

// User is keyed by Handle in the store. UserID references the
// identity-provider account that owns the credentials.
type User struct {
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
