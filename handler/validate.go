package handler

import (
	"net/mail"
	"strings"
)

const (
	msgMustNotBeEmpty = "Must not be empty"
	msgInvalidEmail   = "Must be a valid email address"
	msgPasswordsMatch = "Passwords must match"
	msgHandleTaken    = "This handle is already taken"
	msgEmailInUse     = "email already in use"
	msgWrongCreds     = "Wrong credentials, please try again"
	msgUpstreamFailed = "something went wrong"
)

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validEmail accepts addr-spec only (no display name), including
// quoted local parts, and requires a dotted domain with a top-level
// segment of at least two characters.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		return false
	}
	domain := addr.Address[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 {
		return false
	}
	return len(domain)-dot-1 >= 2
}

// Every rule is checked; violations are collected, not fail-fast.
func validateSignup(req signupRequest) map[string]string {
	violations := map[string]string{}
	switch {
	case isEmpty(req.Email):
		violations["email"] = msgMustNotBeEmpty
	case !validEmail(strings.TrimSpace(req.Email)):
		violations["email"] = msgInvalidEmail
	}
	if isEmpty(req.Password) {
		violations["password"] = msgMustNotBeEmpty
	}
	if req.ConfirmPassword != req.Password {
		violations["confirmPassword"] = msgPasswordsMatch
	}
	if isEmpty(req.Handle) {
		violations["handle"] = msgMustNotBeEmpty
	}
	return violations
}

func validateLogin(req loginRequest) map[string]string {
	violations := map[string]string{}
	if isEmpty(req.Email) {
		violations["email"] = msgMustNotBeEmpty
	}
	if isEmpty(req.Password) {
		violations["password"] = msgMustNotBeEmpty
	}
	return violations
}
