package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	claimDomain "claims-backend/internal/domain/claim"
	estimateDomain "claims-backend/internal/domain/estimate"
	photoDomain "claims-backend/internal/domain/photo"
	photouc "claims-backend/internal/usecase/photo"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// errorJSON maps domain errors to the uniform error payload.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, claimDomain.ErrNotFound),
		errors.Is(err, photoDomain.ErrNotFound),
		errors.Is(err, estimateDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, claimDomain.ErrInvalidStatus),
		errors.Is(err, claimDomain.ErrInvalidPriority),
		errors.Is(err, claimDomain.ErrInvalidInput),
		errors.Is(err, photouc.ErrBadImage):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
