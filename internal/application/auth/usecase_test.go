package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Repuestos-api/internal/application/auth"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Repuestos-api/pkg/jwt"
)

const secret = "test-secret"

func newAuth() *auth.AuthUseCase {
	repo := memory.NewUserRepo(memory.NewStore())
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}).
		WithBcryptCost(bcrypt.MinCost)
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	t.Run("registra y no expone el hash", func(t *testing.T) {
		user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: " ana ", Password: "secreto"})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "ana", user.Username)
	})

	t.Run("username repetido", func(t *testing.T) {
		_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Password: "otro123"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("password corto", func(t *testing.T) {
		_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "beto", Password: "123"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "password")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()
	registered, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)

	t.Run("credenciales correctas", func(t *testing.T) {
		resp, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "secreto"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, resp.User.ID)

		userID, username, err := jwt.Parse(secret, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
		assert.Equal(t, "ana", username)
	})

	t.Run("password incorrecto", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "malo"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "secreto"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
