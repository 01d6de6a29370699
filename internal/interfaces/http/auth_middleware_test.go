package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/kardex-api/internal/application/dto"
	apphttp "github.com/invtrack/kardex-api/internal/interfaces/http"
	pkgjwt "github.com/invtrack/kardex-api/pkg/jwt"
)

const (
	testJWTSecret = "secreto-de-prueba"
	testUserID    = "usr-123"
	testIssuer    = "kardex-api-test"
	testExpMin    = 15
)

// buildTestApp levanta una app mínima con el middleware de auth y una ruta
// protegida por rol que devuelve los claims extraídos del contexto.
func buildTestApp(roles ...string) *fiber.App {
	app := fiber.New()
	grp := app.Group("/protegido", apphttp.AuthMiddleware(testJWTSecret))
	handler := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	}
	if len(roles) > 0 {
		grp.Get("/", apphttp.RequireRole(roles...), handler)
	} else {
		grp.Get("/", handler)
	}
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protegido/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var errResp dto.ErrorResponse
	if resp.StatusCode != fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	}
	return resp.StatusCode, errResp
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()

	status, errResp := doRequest(t, app, "")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", errResp.Code)
}

func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	app := buildTestApp()

	status, errResp := doRequest(t, app, "Bearer no-es-un-jwt")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

func TestAuthMiddleware_EsquemaIncorrecto(t *testing.T) {
	app := buildTestApp()

	status, errResp := doRequest(t, app, "Basic abc123")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()
	token, err := pkgjwt.Generate("otro-secreto", testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	status, errResp := doRequest(t, app, "Bearer "+token)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest("GET", "/protegido/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, "analista"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "analista", body["role"])
}

func TestRequireRole_RolPermitido(t *testing.T) {
	app := buildTestApp("admin")

	status, _ := doRequest(t, app, "Bearer "+tokenForRole(t, "admin"))

	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_VariosRoles(t *testing.T) {
	app := buildTestApp("admin", "analista")

	status, _ := doRequest(t, app, "Bearer "+tokenForRole(t, "analista"))

	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_RolNoPermitido(t *testing.T) {
	app := buildTestApp("admin")

	status, errResp := doRequest(t, app, "Bearer "+tokenForRole(t, "consulta"))

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errResp.Code)
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildTestApp("admin")

	status, errResp := doRequest(t, app, "Bearer "+tokenForRole(t, ""))

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_ROLE", errResp.Code)
}
