package interfaces

import (
	"context"

	"github.com/thehfpv/backend/internal/application/command"
	"github.com/thehfpv/backend/internal/application/query"
	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/infrastructure"
)

type AuthService interface {
	Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetProfile(ctx context.Context, email string) (*query.UserQueryResult, error)
	UpdateProfile(ctx context.Context, email string, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

type OAuthService interface {
	Reconcile(ctx context.Context, identity *infrastructure.ProviderIdentity) (*entities.User, error)
}

type VisitorService interface {
	Track(ctx context.Context, ip, userAgent, referer string) error
	Stats(ctx context.Context) (*query.VisitorStatsResult, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) (*query.UserListResult, error)
	DeleteUsers(ctx context.Context, ids []uint) (int64, error)
}
