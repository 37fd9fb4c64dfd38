package services

import (
	"context"

	"github.com/thehfpv/backend/internal/application/common"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/application/mapper"
	"github.com/thehfpv/backend/internal/application/query"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"github.com/thehfpv/backend/internal/logging"
)

// AdminService backs the operator endpoints. DeleteUsers is the destructive
// escape hatch; normal flows never hard-delete users.
type AdminService struct {
	userRepo repositories.UserRepository
	log      logging.Logger
}

func NewAdminService(userRepo repositories.UserRepository, log logging.Logger) interfaces.AdminService {
	return &AdminService{userRepo: userRepo, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context) (*query.UserListResult, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	results := make([]*common.UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, mapper.NewUserResultFromEntity(u))
	}

	return &query.UserListResult{Users: results, Count: len(results)}, nil
}

func (s *AdminService) DeleteUsers(ctx context.Context, ids []uint) (int64, error) {
	deleted, err := s.userRepo.DeleteByIds(ids)
	if err != nil {
		return 0, err
	}
	s.log.Warn(ctx, "bulk user delete", "requested", len(ids), "deleted", deleted)
	return deleted, nil
}
