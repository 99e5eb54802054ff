package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/baharkarakas/credit-ledger/internal/api/validate"
	"github.com/baharkarakas/credit-ledger/internal/auth"
	"github.com/baharkarakas/credit-ledger/internal/models"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
)

const minPasswordLen = 8

type UserService struct {
	r       repo.Users
	tm      *auth.TokenManager
	revoker auth.Revoker
}

func NewUserService(r repo.Users, tm *auth.TokenManager, revoker auth.Revoker) *UserService {
	if revoker == nil {
		revoker = auth.NopRevoker{}
	}
	return &UserService{r: r, tm: tm, revoker: revoker}
}

func (s *UserService) Register(ctx context.Context, email, password string) (models.User, error) {
	u := models.User{Email: email}
	var emailErr *validate.ErrField
	if err := u.Validate(); err != nil {
		emailErr = &validate.ErrField{Field: "email", Msg: err.Error()}
	}
	if err := validate.Collect(emailErr, validate.MinLen("password", password, minPasswordLen)); err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.r.Create(ctx, u.Email, hash)
}

func (s *UserService) Login(ctx context.Context, email, password string) (auth.Pair, error) {
	u, err := s.r.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repo.ErrNotFound) {
		return auth.Pair{}, ErrInvalidCredentials
	}
	if err != nil {
		return auth.Pair{}, observe(err)
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return auth.Pair{}, ErrInvalidCredentials
	}
	return s.tm.GeneratePair(u.ID)
}

// Refresh rotates a refresh token: the presented one is revoked and a new pair issued.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (auth.Pair, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return auth.Pair{}, ErrInvalidCredentials
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return auth.Pair{}, fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}
	if revoked {
		return auth.Pair{}, ErrInvalidCredentials
	}
	if _, err := s.r.GetByID(ctx, claims.UserID()); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return auth.Pair{}, ErrInvalidCredentials
		}
		return auth.Pair{}, observe(err)
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.Expiry()); err != nil {
		return auth.Pair{}, fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}
	return s.tm.GeneratePair(claims.UserID())
}

// Logout revokes the access token the request was made with. Tokens without
// claims (dev shortcut) have nothing to revoke.
func (s *UserService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.Expiry()); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}
	return nil
}

// Me returns the signed-in owner.
func (s *UserService) Me(ctx context.Context, userID string) (models.User, error) {
	u, err := s.r.GetByID(ctx, userID)
	return u, observe(err)
}
