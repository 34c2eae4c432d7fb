package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(secret, 42, "seller", "marketplace", 5)
	require.NoError(t, err)

	uid, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
	assert.Equal(t, "seller", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, 1, "admin", "marketplace", 5)
	require.NoError(t, err)
	_, _, err = jwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate(secret, 1, "admin", "marketplace", -1)
	require.NoError(t, err)
	_, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 1, "admin", "x", 5)
	assert.Error(t, err)
	_, _, err = jwt.Parse("", "a.b.c")
	assert.Error(t, err)
}
