package handler

import (
	"errors"
	"net/http"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps the core's typed error kinds onto HTTP statuses. The
// services never see HTTP; this is the only place the translation happens.
func respondError(c echo.Context, log *zap.Logger, err error, what string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Warn(what+" not found", zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": what + " not found"})
	case errors.Is(err, service.ErrConflict):
		log.Warn(what+" conflict", zap.Error(err))
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidAmount):
		log.Warn("Invalid "+what+" request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		log.Error("Failed to process "+what, zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to process " + what})
	}
}

// pathID parses a numeric path parameter, returning 0 when absent or
// malformed.
func pathID(c echo.Context, name string) uint {
	var id uint
	if err := echo.PathParamsBinder(c).Uint(name, &id).BindError(); err != nil {
		return 0
	}
	return id
}
