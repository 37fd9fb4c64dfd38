package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/infrastructure/db/postgres"
	"github.com/thehfpv/backend/internal/logging"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newUserRepo(t *testing.T) repositories.UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	return postgres.NewUserRepository(db)
}

func newVisitRepo(t *testing.T) repositories.VisitRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	return postgres.NewVisitRepository(db)
}

func newTestAuthService(t *testing.T, repo repositories.UserRepository) *AuthService {
	t.Helper()
	return &AuthService{
		userRepo:    repo,
		jwtService:  infrastructure.NewJWTService("test-secret", 30*time.Minute),
		emailSender: infrastructure.NoopSender{},
		rateLimiter: infrastructure.NewRateLimiter(time.Minute, 1000),
		log:         testLogger(),
	}
}
