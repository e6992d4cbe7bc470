package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wheelmart/internal/hash"
	"wheelmart/internal/logging"
	"wheelmart/internal/models"
	"wheelmart/internal/repo"
	"wheelmart/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type LoginResult struct {
	Token string
	Role  int
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Address  string
}

func (s *AuthService) Register(ctx context.Context, req RegisterInput) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwHash,
		Address:      req.Address,
		Role:         0,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			l.Warn("register_error", "status", 400, "reason", "email already registered")
			return ErrUserExists
		}
		l.Error("register_error", "status", 500, "error", err)
		return err
	}
	return nil
}

// Login deliberately reports the same failure for an unknown email and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 400, "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 400, "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	exp := time.Now().Add(tokens.AccessTTL)
	token, err := tokens.SignAccessToken(user.ID, user.Email, user.Username, user.Role, exp, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	return &LoginResult{Token: token, Role: user.Role}, nil
}

// UserDetails re-fetches the identity behind a token; a deleted account
// turns into ErrNotFound here even though the token itself still verifies.
func (s *AuthService) UserDetails(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	user, err := s.Repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
