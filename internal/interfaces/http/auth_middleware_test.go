package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	apphttp "github.com/jhoicas/Stock-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Stock-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "stock-api-test"
	testExpMin    = 60
)

// buildTestApp app mínima con AuthMiddleware + RequireRole y un handler que devuelve el alcance de la sesión.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			scope := apphttp.GetScope(c)
			return c.JSON(fiber.Map{
				"role":     apphttp.GetRole(c),
				"user_id":  scope.UserID,
				"shop_id":  scope.ShopID,
				"shop_ids": scope.ShopIDs,
			})
		},
	)
	return app
}

func bearer(t *testing.T, id pkgjwt.Identity) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, id)
	require.NoError(t, err)
	return "Bearer " + tok
}

func tokenForRole(t *testing.T, role string) string {
	return bearer(t, pkgjwt.Identity{UserID: "user-1", ShopID: "shop-a", ShopIDs: []string{"shop-a", "shop-b"}, Role: role})
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), "body: %s", body)
	return out
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		role    string
		status  int
		code    string
	}{
		{"owner en ruta de gerencia", []string{"owner", "manager"}, "owner", fiber.StatusOK, ""},
		{"manager en ruta de gerencia", []string{"owner", "manager"}, "manager", fiber.StatusOK, ""},
		{"vendedor en ruta de gerencia", []string{"owner", "manager"}, "salesperson", fiber.StatusForbidden, "FORBIDDEN"},
		{"técnico en ruta de gerencia", []string{"owner", "manager"}, "technician", fiber.StatusForbidden, "FORBIDDEN"},
		{"token sin rol", []string{"owner"}, "", fiber.StatusUnauthorized, "MISSING_ROLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, buildTestApp(tt.allowed...), tokenForRole(t, tt.role))
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, resp).Code)
			}
		})
	}
}

func TestAuthMiddleware_CargaElAlcance(t *testing.T) {
	resp := doRequest(t, buildTestApp("salesperson"), tokenForRole(t, "salesperson"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Role    string   `json:"role"`
		UserID  string   `json:"user_id"`
		ShopID  string   `json:"shop_id"`
		ShopIDs []string `json:"shop_ids"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "salesperson", body.Role)
	assert.Equal(t, "user-1", body.UserID)
	assert.Equal(t, "shop-a", body.ShopID)
	assert.Equal(t, []string{"shop-a", "shop-b"}, body.ShopIDs)
}

func TestAuthMiddleware_TokensInvalidos(t *testing.T) {
	app := buildTestApp("owner")
	otherSecret, err := pkgjwt.Generate("otro-secreto", testIssuer, testExpMin, pkgjwt.Identity{UserID: "u", ShopID: "shop-a", Role: "owner"})
	require.NoError(t, err)
	expired, err := pkgjwt.Generate(testJWTSecret, testIssuer, -5, pkgjwt.Identity{UserID: "u", ShopID: "shop-a", Role: "owner"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"sin esquema Bearer", "Token abc", "INVALID_TOKEN"},
		{"basura", "Bearer no.es.jwt", "INVALID_TOKEN"},
		{"firma de otro secreto", "Bearer " + otherSecret, "INVALID_TOKEN"},
		{"expirado", "Bearer " + expired, "INVALID_TOKEN"},
		{"sin tienda activa", bearer(t, pkgjwt.Identity{UserID: "u", Role: "owner"}), "MISSING_SHOP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, tt.header)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Code)
		})
	}
}
