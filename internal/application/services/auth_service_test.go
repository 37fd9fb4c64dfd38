package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehfpv/backend/internal/application/command"
	"github.com/thehfpv/backend/internal/infrastructure"
)

func registerCmd(email string) *command.RegisterUserCommand {
	return &command.RegisterUserCommand{
		Email:     email,
		Password:  "secret123",
		FirstName: "First",
		LastName:  "Last",
	}
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newUserRepo(t))

	result, err := svc.Register(ctx, registerCmd("user@example.com"))
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "user@example.com", result.User.Email)
	assert.Equal(t, "PUBLIC", result.User.UserRole)
	assert.False(t, result.User.EmailVerified)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newUserRepo(t))

	_, err := svc.Register(ctx, registerCmd("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerCmd("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newUserRepo(t))

	_, err := svc.Register(ctx, registerCmd("user@example.com"))
	require.NoError(t, err)

	result, err := svc.Login(ctx, &command.LoginUserCommand{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, result.User)
	assert.True(t, result.User.EmailVerified, "first password login completes verification")
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newUserRepo(t))

	_, err := svc.Register(ctx, registerCmd("user@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, &command.LoginUserCommand{Email: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &command.LoginUserCommand{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RateLimited(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newUserRepo(t))
	svc.rateLimiter = infrastructure.NewRateLimiter(time.Minute, 2)

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(ctx, &command.LoginUserCommand{Email: "user@example.com", Password: "x"})
	}
	_, err := svc.Login(ctx, &command.LoginUserCommand{Email: "user@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestUpdateProfile_PasswordChange(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newUserRepo(t))

	_, err := svc.Register(ctx, registerCmd("user@example.com"))
	require.NoError(t, err)

	wrong := "nope"
	newPass := "brandnew456"
	_, err = svc.UpdateProfile(ctx, "user@example.com", &command.UpdateProfileCommand{
		CurrentPassword: &wrong,
		NewPassword:     &newPass,
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	current := "secret123"
	_, err = svc.UpdateProfile(ctx, "user@example.com", &command.UpdateProfileCommand{
		CurrentPassword: &current,
		NewPassword:     &newPass,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &command.LoginUserCommand{Email: "user@example.com", Password: newPass})
	require.NoError(t, err)
}

func TestUpdateProfile_NameEdit(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newUserRepo(t))

	_, err := svc.Register(ctx, registerCmd("user@example.com"))
	require.NoError(t, err)

	newFirst := "Updated"
	result, err := svc.UpdateProfile(ctx, "user@example.com", &command.UpdateProfileCommand{FirstName: &newFirst})
	require.NoError(t, err)
	assert.Equal(t, "Updated", result.User.FirstName)
	assert.Equal(t, "Last", result.User.LastName)
	// Email is immutable through this path.
	assert.Equal(t, "user@example.com", result.User.Email)
}

func TestGetProfile_Unknown(t *testing.T) {
	svc := newTestAuthService(t, newUserRepo(t))
	_, err := svc.GetProfile(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
