package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrini31/bike-garage-manager/internal/domain/user"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	service, err := NewJWTService()
	require.NoError(t, err)

	u, err := user.NewUser("Pedro Mecânico", "pedro", "pedro@oficina.com.br", "", "senha123", user.TypeAdmin)
	require.NoError(t, err)

	token, err := service.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "pedro", claims.Login)
	assert.Equal(t, user.TypeAdmin, claims.UserType)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	service, err := NewJWTService()
	require.NoError(t, err)

	_, err = service.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-a")
	serviceA, err := NewJWTService()
	require.NoError(t, err)

	u, err := user.NewUser("Ana", "ana", "", "", "senha123", user.TypeStaff)
	require.NoError(t, err)

	token, err := serviceA.GenerateToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "chave-b")
	serviceB, err := NewJWTService()
	require.NoError(t, err)

	_, err = serviceB.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTServiceRequiresKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}
