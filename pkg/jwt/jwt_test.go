package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Stock-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "stock-api-test"
)

func testIdentity() pkgjwt.Identity {
	return pkgjwt.Identity{
		UserID:  "00000000-0000-0000-0000-000000000001",
		ShopID:  "shop-a",
		ShopIDs: []string{"shop-a", "shop-b"},
		Role:    "manager",
	}
}

func TestGenerateAndParse_ConAlcanceDeTiendas(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), claims.Identity())
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, -1, testIdentity())
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, testIdentity())
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, 60, testIdentity())
	assert.Error(t, err)
}

func TestParse_SinUsuario(t *testing.T) {
	id := testIdentity()
	id.UserID = ""
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, id)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}
