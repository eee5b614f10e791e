// Package identity owns credentials and token issuance. Handlers see
// only the Provider interface and the closed set of error codes below,
// never the provider's internals.
package identity

import (
	"context"
	"errors"
)

// Code classifies provider failures. The string values are the wire
// codes surfaced to clients in 500 responses.
type Code string

const (
	CodeEmailInUse    Code = "auth/email-already-in-use"
	CodeUserNotFound  Code = "auth/user-not-found"
	CodeWrongPassword Code = "auth/wrong-password"
	CodeInternal      Code = "auth/internal-error"
)

type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the provider code from err, defaulting to
// CodeInternal for anything the provider did not classify.
func CodeOf(err error) Code {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Code
	}
	return CodeInternal
}

type Provider interface {
	// CreateAccount registers new credentials and returns the
	// assigned user id. Fails with CodeEmailInUse if the email
	// already has an account.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	// Authenticate checks credentials and returns the user id.
	// Fails with CodeUserNotFound or CodeWrongPassword.
	Authenticate(ctx context.Context, email, password string) (string, error)
	// IssueToken returns a bearer token for the user id.
	IssueToken(userID string) (string, error)
}
