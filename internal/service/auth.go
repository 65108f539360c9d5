package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/jwtutil"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown user id and a wrong
// password, so a caller cannot probe which ids exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and backs the owner identities that scope every other
// operation. Passwords are stored as bcrypt hashes and compared with
// bcrypt's constant-time check.
type AuthService struct {
	store Store
}

// NewAuthService constructs an AuthService backed by the given store.
func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

// Register creates a new owner account.
func (s *AuthService) Register(ctx context.Context, externalID, password string) (*model.User, error) {
	if externalID == "" || password == "" {
		return nil, fmt.Errorf("%w: user ID and password required", ErrInvalidInput)
	}

	_, err := s.store.UserByExternalID(ctx, externalID)
	if err == nil {
		return nil, fmt.Errorf("%w: user ID already exists", ErrConflict)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		UserID:       externalID,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token valid for the
// configured 7-day window.
func (s *AuthService) Login(ctx context.Context, externalID, password string) (string, *model.User, error) {
	user, err := s.store.UserByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwtutil.GenerateToken(user.ID, user.UserID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// UserByID returns the owner record for an authenticated id.
func (s *AuthService) UserByID(ctx context.Context, id uint) (*model.User, error) {
	return s.store.UserByID(ctx, id)
}
