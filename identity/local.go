package identity

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour * 24 * 7

// Local keeps accounts in the accounts table with bcrypt password
// hashes and signs HS256 bearer tokens.
type Local struct {
	DB     *sql.DB
	Secret string
}

func NewLocal(conn *sql.DB, secret string) *Local {
	return &Local{DB: conn, Secret: secret}
}

func (l *Local) CreateAccount(ctx context.Context, email, password string) (string, error) {
	row := l.DB.QueryRowContext(ctx, "SELECT COUNT(email) as count FROM accounts WHERE email = $1", email)

	var count int
	if err := row.Scan(&count); err != nil {
		return "", &Error{Code: CodeInternal, Err: err}
	}
	if count != 0 {
		return "", &Error{Code: CodeEmailInUse}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", &Error{Code: CodeInternal, Err: err}
	}

	userID := uuid.NewString()
	_, err = l.DB.ExecContext(ctx,
		"INSERT INTO accounts (id, email, password, created_at) VALUES ($1, $2, $3, $4)",
		userID, email, hashedPassword, time.Now().UTC())
	if err != nil {
		return "", &Error{Code: CodeInternal, Err: err}
	}
	return userID, nil
}

func (l *Local) Authenticate(ctx context.Context, email, password string) (string, error) {
	row := l.DB.QueryRowContext(ctx, "SELECT id, password FROM accounts WHERE email = $1", email)

	var userID, storedPassword string
	err := row.Scan(&userID, &storedPassword)
	if err == sql.ErrNoRows {
		return "", &Error{Code: CodeUserNotFound}
	}
	if err != nil {
		return "", &Error{Code: CodeInternal, Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(password)); err != nil {
		return "", &Error{Code: CodeWrongPassword, Err: err}
	}
	return userID, nil
}

func (l *Local) IssueToken(userID string) (string, error) {
	if l.Secret == "" {
		return "", &Error{Code: CodeInternal, Err: errors.New("missing secret")}
	}
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = userID
	claims["exp"] = time.Now().Add(tokenTTL).Unix()
	signed, err := token.SignedString([]byte(l.Secret))
	if err != nil {
		return "", &Error{Code: CodeInternal, Err: err}
	}
	return signed, nil
}
