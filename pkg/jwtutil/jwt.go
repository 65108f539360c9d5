package jwtutil

import (
	"time"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/config"

	"github.com/golang-jwt/jwt/v4"
)

var (
	secret     = []byte("dev_secret_key")
	expiration = 7 * 24 * time.Hour
)

// Init configures the signing key and token lifetime from the application
// configuration. Must be called once at startup before issuing tokens.
func Init(cfg *config.Config) {
	secret = []byte(cfg.JWT.SigningKey)
	expiration = cfg.JWT.ExpirationTime
}

// UserClaims represents the JWT claims for an authenticated owner
type UserClaims struct {
	UserID     uint   `json:"id"`
	ExternalID string `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for the given owner identity
func GenerateToken(userID uint, externalID string) (string, error) {
	claims := UserClaims{
		UserID:     userID,
		ExternalID: externalID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates and parses the JWT token
func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
