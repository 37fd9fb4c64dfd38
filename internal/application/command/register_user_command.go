package command

import "github.com/thehfpv/backend/internal/application/common"

type RegisterUserCommand struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type RegisterUserCommandResult struct {
	Message string             `json:"message"`
	User    *common.UserResult `json:"user"`
}
