package command

import "github.com/thehfpv/backend/internal/application/common"

// UpdateProfileCommand carries either a password change (both password
// fields set) or a name edit. Email is immutable.
type UpdateProfileCommand struct {
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
}

func (c *UpdateProfileCommand) IsPasswordChange() bool {
	return c.CurrentPassword != nil && c.NewPassword != nil
}

type UpdateProfileCommandResult struct {
	Message string             `json:"message"`
	User    *common.UserResult `json:"user"`
}
