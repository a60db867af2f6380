package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
)

func TestUserUseCase_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepo(memory.NewStore())
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Username: "bodega", PasswordHash: "x", CreatedAt: time.Now()}))
	uc := usecase.NewUserUseCase(repo)

	got, err := uc.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "bodega", got.Username)

	_, err = uc.GetByID(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
