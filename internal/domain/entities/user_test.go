package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane Ann Doe", "Jane", "Ann Doe"},
		{"Jane", "Jane", ""},
		{"", "", ""},
		{"  Jane Doe  ", "Jane", "Doe"},
	}

	for _, tt := range tests {
		first, last := splitDisplayName(tt.name)
		assert.Equal(t, tt.first, first, "input %q", tt.name)
		assert.Equal(t, tt.last, last, "input %q", tt.name)
	}
}

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleRoot.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RolePublic))
	assert.False(t, RolePublic.AtLeast(RoleAdmin))
	assert.False(t, UserRole("BOGUS").AtLeast(RolePublic))
}

func TestPasswordLifecycle(t *testing.T) {
	u := NewUser("user@example.com", "secret123", "A", "B")
	require.NoError(t, u.HashPassword())
	assert.NotEqual(t, "secret123", u.Password)
	assert.NoError(t, u.CheckPassword("secret123"))
	assert.Error(t, u.CheckPassword("wrong"))

	require.NoError(t, u.ChangePassword("newpass456"))
	assert.NoError(t, u.CheckPassword("newpass456"))
	assert.Error(t, u.CheckPassword("secret123"))
}

func TestSocialUserNeverMatchesPassword(t *testing.T) {
	u := NewSocialUser("s@example.com", "Jane Doe", "GOOGLE", "sub-1", "")
	assert.Error(t, u.CheckPassword(""))
	assert.Error(t, u.CheckPassword(SocialPasswordMarker))
}

func TestLinkProviderKeepsPassword(t *testing.T) {
	u := NewUser("user@example.com", "secret123", "A", "B")
	require.NoError(t, u.HashPassword())
	hash := u.Password

	u.LinkProvider("GOOGLE", "sub-9")
	assert.Equal(t, hash, u.Password)
	assert.True(t, u.EmailVerified)
	assert.Equal(t, "GOOGLE", u.Provider)
}

func TestValidatedUser(t *testing.T) {
	_, err := NewValidatedUser(NewUser("", "secret123", "", ""))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("not-an-email", "secret123", "", ""))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("user@example.com", "", "", ""))
	assert.Error(t, err)

	vu, err := NewValidatedUser(NewUser("user@example.com", "secret123", "", ""))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", vu.GetUser().Email)
}
