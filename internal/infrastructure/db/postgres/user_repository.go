package postgres

import (
	"errors"

	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Social accounts carry the non-hashable marker; everything else is
	// hashed before it touches the database.
	if userEntity.Password != entities.SocialPasswordMarker && !isBcryptHash(userEntity.Password) {
		if err := userEntity.HashPassword(); err != nil {
			return nil, err
		}
	}

	userModel := mapToModel(userEntity)
	if err := r.db.Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}

	return r.FindById(userModel.Id)
}

func (r *UserRepository) FindById(id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByProvider(provider, providerId string) (*entities.User, error) {
	var userModel UserModel
	err := r.db.Where("provider = ? AND provider_id = ?", provider, providerId).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func (r *UserRepository) Update(user *entities.User) (*entities.User, error) {
	userModel := mapToModel(user)
	if err := r.db.Save(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}

	return r.FindById(user.Id)
}

func (r *UserRepository) FindAll() ([]*entities.User, error) {
	var models []UserModel
	if err := r.db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(models))
	for i := range models {
		users = append(users, mapToEntity(&models[i]))
	}
	return users, nil
}

func (r *UserRepository) DeleteByIds(ids []uint) (int64, error) {
	result := r.db.Delete(&UserModel{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (s[:4] == "$2a$" || s[:4] == "$2b$" || s[:4] == "$2y$")
}

func mapToModel(u *entities.User) *UserModel {
	return &UserModel{
		Id:              u.Id,
		Email:           u.Email,
		Password:        u.Password,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            string(u.Role),
		EmailVerified:   u.EmailVerified,
		Status:          u.Status,
		Provider:        nullable(u.Provider),
		ProviderId:      nullable(u.ProviderId),
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func mapToEntity(m *UserModel) *entities.User {
	return &entities.User{
		Id:              m.Id,
		Email:           m.Email,
		Password:        m.Password,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Role:            entities.UserRole(m.Role),
		EmailVerified:   m.EmailVerified,
		Status:          m.Status,
		Provider:        deref(m.Provider),
		ProviderId:      deref(m.ProviderId),
		ProfileImageURL: m.ProfileImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
