package command

import "github.com/thehfpv/backend/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    *common.UserResult `json:"user"`
}
