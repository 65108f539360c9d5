package middleware

import (
	"net/http"
	"strings"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/jwtutil"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/logger"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID     = "user_id"
	ContextExternalID = "external_id"
)

// AuthMiddleware validates the JWT token from the Authorization header and
// resolves the owner identity that scopes every core operation.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Error("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Error("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		// Extract the token
		tokenString := parts[1]

		// Validate the token (expiry is enforced here at the boundary)
		claims, err := jwtutil.ValidateToken(tokenString)
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
		}

		// Store owner identity in context for later use
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextExternalID, claims.ExternalID)

		// Token is valid, proceed with the request
		return next(c)
	}
}

// OwnerID returns the authenticated owner id set by AuthMiddleware.
func OwnerID(c echo.Context) uint {
	if id, ok := c.Get(ContextUserID).(uint); ok {
		return id
	}
	return 0
}
