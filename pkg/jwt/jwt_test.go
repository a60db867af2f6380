package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("secret", "user-1", "ana", "stock-repuestos", 5)
	require.NoError(t, err)

	userID, username, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ana", username)
}

func TestParse_Rejects(t *testing.T) {
	token, err := jwt.Generate("secret", "user-1", "ana", "stock-repuestos", 5)
	require.NoError(t, err)

	t.Run("firma con otro secret", func(t *testing.T) {
		_, _, err := jwt.Parse("otro", token)
		assert.Error(t, err)
	})

	t.Run("token expirado", func(t *testing.T) {
		expired, err := jwt.Generate("secret", "user-1", "ana", "stock-repuestos", -1)
		require.NoError(t, err)
		_, _, err = jwt.Parse("secret", expired)
		assert.Error(t, err)
	})

	t.Run("secret vacío", func(t *testing.T) {
		_, err := jwt.Generate("", "user-1", "ana", "x", 5)
		assert.Error(t, err)
		_, _, err = jwt.Parse("", token)
		assert.Error(t, err)
	})

	t.Run("basura", func(t *testing.T) {
		_, _, err := jwt.Parse("secret", "no-es-un-token")
		assert.Error(t, err)
	})
}
