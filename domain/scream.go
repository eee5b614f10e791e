package domain

import (
	"time"
)

type Scream struct {
	ID         string    `json:"screamId"`
	Body       string    `json:"body"`
	UserHandle string    `json:"userHandle"`
	CreatedAt  time.Time `json:"createdAt"`
}
