package repositories

import (
	"errors"

	"github.com/thehfpv/backend/internal/domain/entities"
)

// ErrDuplicate is returned by Create when a unique constraint (email or
// provider+provider_id) rejects the row.
var ErrDuplicate = errors.New("record already exists")

// UserRepository persists user identity records. Lookups return (nil, nil)
// when no row matches.
type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uint) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByProvider(provider, providerId string) (*entities.User, error)
	Update(user *entities.User) (*entities.User, error)
	FindAll() ([]*entities.User, error)
	DeleteByIds(ids []uint) (int64, error)
}
