package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehfpv/backend/internal/application/command"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/application/services"
	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/infrastructure/db/postgres"
	"github.com/thehfpv/backend/internal/logging"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newGateFixture(t *testing.T) (*infrastructure.JWTService, interfaces.AuthService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	jwtService := infrastructure.NewJWTService("test-secret", 30*time.Minute)
	authService := services.NewAuthService(
		postgres.NewUserRepository(db),
		jwtService,
		infrastructure.NoopSender{},
		infrastructure.NewRateLimiter(time.Minute, 1000),
		testLogger(),
	)
	return jwtService, authService
}

func runGate(t *testing.T, jwtService *infrastructure.JWTService, authService interfaces.AuthService, authHeader string) *entities.User {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seen *entities.User
	h := AuthGate(jwtService, authService, testLogger())(func(c echo.Context) error {
		seen = CurrentUser(c)
		return nil
	})
	require.NoError(t, h(c))
	return seen
}

func TestAuthGate_ValidToken(t *testing.T) {
	jwtService, authService := newGateFixture(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, &command.RegisterUserCommand{
		Email:    "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := authService.Login(ctx, &command.LoginUserCommand{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)

	user := runGate(t, jwtService, authService, "Bearer "+result.Token)
	require.NotNil(t, user)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestAuthGate_AnonymousPassThrough(t *testing.T) {
	jwtService, authService := newGateFixture(t)

	// No header, non-bearer header, garbage token, token for an unknown
	// user: all proceed anonymous, never error.
	for _, header := range []string{
		"",
		"Basic dXNlcjpwYXNz",
		"Bearer not.a.jwt",
	} {
		assert.Nil(t, runGate(t, jwtService, authService, header), "header %q", header)
	}

	ghost, err := jwtService.Issue(&entities.User{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Nil(t, runGate(t, jwtService, authService, "Bearer "+ghost))
}

func TestAuthGate_ExpiredToken(t *testing.T) {
	_, authService := newGateFixture(t)

	expiredIssuer := infrastructure.NewJWTService("test-secret", -time.Minute)
	tok, err := expiredIssuer.Issue(&entities.User{Email: "user@example.com"})
	require.NoError(t, err)

	verifier := infrastructure.NewJWTService("test-secret", 30*time.Minute)
	assert.Nil(t, runGate(t, verifier, authService, "Bearer "+tok))
}
