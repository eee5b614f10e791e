package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"screamer/domain"
)

var sanitizerStrict = bluemonday.StrictPolicy()

func (h *Handler) GetScreams(c echo.Context) error {
	screams, err := h.Store.Screams(c.Request().Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("listing screams failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgUpstreamFailed})
	}
	return c.JSON(http.StatusOK, screams)
}

type screamRequest struct {
	Body       string `json:"body"`
	UserHandle string `json:"userHandle"`
}

func (h *Handler) NewScream(c echo.Context) error {
	req := screamRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	violations := map[string]string{}
	if isEmpty(req.Body) {
		violations["body"] = msgMustNotBeEmpty
	}
	if isEmpty(req.UserHandle) {
		violations["userHandle"] = msgMustNotBeEmpty
	}
	if len(violations) != 0 {
		return c.JSON(http.StatusBadRequest, violations)
	}

	scream := domain.Scream{
		Body:       sanitizerStrict.Sanitize(req.Body),
		UserHandle: req.UserHandle,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := h.Store.AddScream(c.Request().Context(), scream)
	if err != nil {
		h.Logger.Error().Err(err).Str("userHandle", req.UserHandle).Msg("creating scream failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgUpstreamFailed})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("document %s created successfully", id)})
}
