package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"screamer/domain"
	"screamer/identity"
	"screamer/store"
)

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Handle          string `json:"handle"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup runs a strict sequence: handle lookup, account creation,
// token issuance, user record write. Each step is gated on the
// previous one succeeding; there is no rollback, so a failure after
// account creation leaves an account without a user record.
func (h *Handler) Signup(c echo.Context) error {
	req := signupRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if violations := validateSignup(req); len(violations) != 0 {
		return c.JSON(http.StatusBadRequest, violations)
	}

	ctx := c.Request().Context()

	_, err := h.Store.GetUser(ctx, req.Handle)
	if err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"handle": msgHandleTaken})
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.Logger.Error().Err(err).Str("handle", req.Handle).Msg("signup: handle lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgUpstreamFailed})
	}

	userID, err := h.Identity.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		code := identity.CodeOf(err)
		if code == identity.CodeEmailInUse {
			return c.JSON(http.StatusBadRequest, echo.Map{"email": msgEmailInUse})
		}
		h.Logger.Error().Err(err).Str("handle", req.Handle).Msg("signup: account creation failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": code})
	}

	token, err := h.Identity.IssueToken(userID)
	if err != nil {
		h.Logger.Error().Err(err).Str("userId", userID).Msg("signup: token issuance failed, account has no user record")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": identity.CodeOf(err)})
	}

	user := domain.User{
		Handle:    req.Handle,
		Email:     req.Email,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.SetUser(ctx, user); err != nil {
		h.Logger.Error().Err(err).Str("userId", userID).Msg("signup: user write failed, account has no user record")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgUpstreamFailed})
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

func (h *Handler) Login(c echo.Context) error {
	req := loginRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if violations := validateLogin(req); len(violations) != 0 {
		return c.JSON(http.StatusBadRequest, violations)
	}

	userID, err := h.Identity.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		code := identity.CodeOf(err)
		if code == identity.CodeWrongPassword {
			return c.JSON(http.StatusForbidden, echo.Map{"general": msgWrongCreds})
		}
		h.Logger.Error().Err(err).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": code})
	}

	token, err := h.Identity.IssueToken(userID)
	if err != nil {
		h.Logger.Error().Err(err).Str("userId", userID).Msg("login: token issuance failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": identity.CodeOf(err)})
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
