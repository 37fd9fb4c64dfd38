package query

import "github.com/thehfpv/backend/internal/application/common"

type UserQueryResult struct {
	Message string             `json:"message"`
	User    *common.UserResult `json:"user"`
}

type UserListResult struct {
	Users []*common.UserResult `json:"users"`
	Count int                  `json:"count"`
}
