package services

import (
	"context"
	"errors"

	"github.com/thehfpv/backend/internal/application/command"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/application/mapper"
	"github.com/thehfpv/backend/internal/application/query"
	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/logging"
)

type AuthService struct {
	userRepo    repositories.UserRepository
	jwtService  *infrastructure.JWTService
	emailSender infrastructure.EmailSender
	rateLimiter *infrastructure.RateLimiter
	log         logging.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	emailSender infrastructure.EmailSender,
	rateLimiter *infrastructure.RateLimiter,
	log logging.Logger,
) interfaces.AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		emailSender: emailSender,
		rateLimiter: rateLimiter,
		log:         log,
	}
}

func (s *AuthService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if !s.rateLimiter.Allow("register:" + cmd.Email) {
		return nil, ErrRateLimited
	}

	existing, err := s.userRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	newUser := entities.NewUser(cmd.Email, cmd.Password, cmd.FirstName, cmd.LastName)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	// Email is best effort; registration already succeeded.
	if err := s.emailSender.SendWelcome(ctx, createdUser.Email, createdUser.FirstName); err != nil {
		s.log.Warn(ctx, "welcome email failed", "email", createdUser.Email, "error", err)
	}

	return &command.RegisterUserCommandResult{
		Message: "User registered successfully! Please verify your email.",
		User:    mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if !s.rateLimiter.Allow("login:" + cmd.Email) {
		return nil, ErrRateLimited
	}

	user, err := s.userRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// First successful password login completes verification.
	if !user.EmailVerified {
		user.SetEmailVerified(true)
		if user, err = s.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Message: "Login successful",
		Token:   token,
		User:    mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, email string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &query.UserQueryResult{
		Message: "Profile information retrieved successfully",
		User:    mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, email string, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if cmd.IsPasswordChange() {
		if err := user.CheckPassword(*cmd.CurrentPassword); err != nil {
			return nil, ErrPasswordMismatch
		}
		if err := user.ChangePassword(*cmd.NewPassword); err != nil {
			return nil, err
		}
	} else {
		firstName := user.FirstName
		lastName := user.LastName
		if cmd.FirstName != nil {
			firstName = *cmd.FirstName
		}
		if cmd.LastName != nil {
			lastName = *cmd.LastName
		}
		user.UpdateName(firstName, lastName)
	}

	updatedUser, err := s.userRepo.Update(user)
	if err != nil {
		return nil, err
	}

	return &command.UpdateProfileCommandResult{
		Message: "Profile successfully updated.",
		User:    mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *AuthService) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.userRepo.FindByEmail(email)
}
