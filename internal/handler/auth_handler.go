package handler

import (
	"net/http"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/middleware"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/service"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/logger"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login, and identity lookup.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new owner account
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	// Parse request
	var req struct {
		UserID   string `json:"userId"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID and password required"})
	}

	user, err := h.auth.Register(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		prometheus.RecordAuthError("registration_failed")
		return respondError(c, log, err, "registration")
	}

	log.Info("User registered", zap.String("user_id", user.UserID))
	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully"})
}

// Login verifies credentials and issues a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	// Parse request
	var req struct {
		UserID   string `json:"userId"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		log.Error("Login failed", zap.String("user_id", req.UserID), zap.Error(err))
		prometheus.RecordAuthError("login_failure")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid credentials"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in", zap.String("user_id", user.UserID))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// CurrentUser returns the authenticated owner identity
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	log := logger.FromContext(c)

	user, err := h.auth.UserByID(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, log, err, "user")
	}

	return c.JSON(http.StatusOK, echo.Map{"userId": user.UserID, "id": user.ID})
}
