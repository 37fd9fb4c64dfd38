package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func validated(t *testing.T, u *entities.User) *entities.ValidatedUser {
	t.Helper()
	vu, err := entities.NewValidatedUser(u)
	require.NoError(t, err)
	return vu
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	created, err := repo.Create(validated(t, entities.NewUser("user@example.com", "secret123", "First", "Last")))
	require.NoError(t, err)
	require.NotZero(t, created.Id)
	assert.Equal(t, entities.RolePublic, created.Role)
	assert.NotEqual(t, "secret123", created.Password, "password must be stored hashed")
	assert.NoError(t, created.CheckPassword("secret123"))

	found, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.Id, found.Id)

	missing, err := repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Create(validated(t, entities.NewUser("dup@example.com", "secret123", "A", "B")))
	require.NoError(t, err)

	_, err = repo.Create(validated(t, entities.NewUser("dup@example.com", "other456", "C", "D")))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestUserRepository_ProviderIdentity(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	social := entities.NewSocialUser("social@example.com", "Jane Doe", "GOOGLE", "sub-123", "")
	created, err := repo.Create(validated(t, social))
	require.NoError(t, err)

	found, err := repo.FindByProvider("GOOGLE", "sub-123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.Id, found.Id)
	assert.Equal(t, "Jane", found.FirstName)
	assert.Equal(t, "Doe", found.LastName)

	// Same external identity twice must hit the unique index.
	again := entities.NewSocialUser("other@example.com", "Jane Doe", "GOOGLE", "sub-123", "")
	_, err = repo.Create(validated(t, again))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// Local accounts carry no provider and must not collide with each other.
	_, err = repo.Create(validated(t, entities.NewUser("l1@example.com", "secret123", "", "")))
	require.NoError(t, err)
	_, err = repo.Create(validated(t, entities.NewUser("l2@example.com", "secret123", "", "")))
	require.NoError(t, err)
}

func TestUserRepository_DeleteByIds(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	u1, err := repo.Create(validated(t, entities.NewUser("a@example.com", "secret123", "", "")))
	require.NoError(t, err)
	u2, err := repo.Create(validated(t, entities.NewUser("b@example.com", "secret123", "", "")))
	require.NoError(t, err)

	deleted, err := repo.DeleteByIds([]uint{u1.Id, u2.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
