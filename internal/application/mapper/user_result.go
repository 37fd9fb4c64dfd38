package mapper

import (
	"github.com/thehfpv/backend/internal/application/common"
	"github.com/thehfpv/backend/internal/domain/entities"
)

const dateLayout = "01-02-2006 15:04:05"

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		UserId:          user.Id,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		UserRole:        string(user.Role),
		EmailVerified:   user.EmailVerified,
		Provider:        user.Provider,
		ProfileImageURL: user.ProfileImageURL,
		CreateDate:      user.CreatedAt.Format(dateLayout),
		UpdateDate:      user.UpdatedAt.Format(dateLayout),
	}
}
