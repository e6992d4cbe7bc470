package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wheelmart/internal/db"
	"wheelmart/internal/repo"
	"wheelmart/internal/tokens"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &AuthService{
		Repo:      &repo.GormRepo{DB: gdb},
		JWTSecret: []byte("test-jwt-secret"),
	}
}

func registerInput(email string) RegisterInput {
	return RegisterInput{
		Username: "test_user",
		Email:    email,
		Password: "Secret123",
		Address:  "1 Test Street",
	}
}

func TestAuthService_Register_SuccessAndConflict(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerInput("user@example.com")))

	err := svc.Register(ctx, registerInput("user@example.com"))
	require.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_Login_IssuesClaims(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerInput("user@example.com")))

	res, err := svc.Login(ctx, "user@example.com", "Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, 0, res.Role)

	claims, err := tokens.AccessClaimsFromToken(res.Token, svc.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, "test_user", claims.Username)
	require.Equal(t, 0, claims.Role)
	require.NotEmpty(t, claims.UserID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerInput("user@example.com")))

	_, err := svc.Login(ctx, "user@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "Secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UserDetails_GoneUser(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.UserDetails(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UserDetails(ctx, "not-a-uuid")
	require.ErrorIs(t, err, ErrNotFound)
}
