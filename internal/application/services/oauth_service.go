package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/logging"
)

// OAuthService maps a confirmed provider identity onto a local user record.
type OAuthService struct {
	userRepo repositories.UserRepository
	log      logging.Logger
}

func NewOAuthService(userRepo repositories.UserRepository, log logging.Logger) interfaces.OAuthService {
	return &OAuthService{userRepo: userRepo, log: log}
}

// Reconcile resolves the provider identity to a local user, first match wins:
//
//  1. (provider, provider id) already linked: sync the email-verified flag if
//     the provider changed it, refresh updated_at, touch nothing else.
//  2. Same email with no linkage: attach the provider identity to the local
//     account, keeping its password hash.
//  3. No match: create a fresh lowest-privilege user.
//
// Two first logins racing to create the same identity are resolved by the
// unique (provider, provider_id) index: the loser re-runs the lookup.
func (s *OAuthService) Reconcile(ctx context.Context, identity *infrastructure.ProviderIdentity) (*entities.User, error) {
	user, err := s.userRepo.FindByProvider(identity.Provider, identity.Subject)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if user.EmailVerified != identity.EmailVerified {
			user.SetEmailVerified(identity.EmailVerified)
		} else {
			user.Touch()
		}
		return s.userRepo.Update(user)
	}

	user, err = s.userRepo.FindByEmail(identity.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.LinkProvider(identity.Provider, identity.Subject)
		s.log.Info(ctx, "linked provider identity to existing account", "email", user.Email, "provider", identity.Provider)
		return s.userRepo.Update(user)
	}

	newUser := entities.NewSocialUser(identity.Email, identity.Name, identity.Provider, identity.Subject, identity.Picture)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(validatedUser)
	if err == nil {
		s.log.Info(ctx, "created user from provider identity", "email", created.Email, "provider", identity.Provider)
		return created, nil
	}
	if !errors.Is(err, repositories.ErrDuplicate) {
		return nil, err
	}

	// Lost the creation race; the row exists now.
	user, lookupErr := s.userRepo.FindByProvider(identity.Provider, identity.Subject)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if user == nil {
		return nil, fmt.Errorf("reconcile %s identity: %w", identity.Provider, err)
	}
	return user, nil
}
