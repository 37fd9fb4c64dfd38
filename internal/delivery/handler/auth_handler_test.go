package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehfpv/backend/internal/infrastructure"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	_, authService := newGateFixture(t)
	return NewAuthHandler(authService, infrastructure.NewMemorySessionStore(), testLogger())
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	h := newAuthHandler(t)

	body := `{"email":"user@example.com","password":"secret123","firstName":"First","lastName":"Last"}`
	rec := postJSON(t, h.Register, "/auth/register", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")

	// Second registration with the same email fails with a 400 error body.
	rec = postJSON(t, h.Register, "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "already in use")
}

func TestLoginEndpoint(t *testing.T) {
	h := newAuthHandler(t)

	register := `{"email":"user@example.com","password":"secret123","firstName":"First","lastName":"Last"}`
	rec := postJSON(t, h.Register, "/auth/register", register)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.Login, "/auth/login", `{"email":"user@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			EmailVerified bool `json:"emailVerified"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.EmailVerified)

	rec = postJSON(t, h.Login, "/auth/login", `{"email":"user@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	h := newAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully logged out")
}
