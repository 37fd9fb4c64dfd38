package entities

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SocialPasswordMarker is stored instead of a hash for accounts created by an
// OAuth provider. It is not a bcrypt hash, so it can never match a password.
const SocialPasswordMarker = "SOCIAL_LOGIN_USER"

type UserRole string

const (
	RolePublic UserRole = "PUBLIC"
	RoleAdmin  UserRole = "ADMIN"
	RoleRoot   UserRole = "ROOT"
)

// Level orders roles by privilege. Unknown roles rank below PUBLIC.
func (r UserRole) Level() int {
	switch r {
	case RolePublic:
		return 1
	case RoleAdmin:
		return 2
	case RoleRoot:
		return 3
	default:
		return 0
	}
}

func (r UserRole) AtLeast(min UserRole) bool {
	return r.Level() >= min.Level()
}

const (
	StatusActive   = 1
	StatusInactive = 0
)

type User struct {
	Id              uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Role            UserRole
	EmailVerified   bool
	Status          int
	Provider        string
	ProviderId      string
	ProfileImageURL string
}

func NewUser(email, password, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Role:      RolePublic,
		Status:    StatusActive,
	}
}

// NewSocialUser builds a user from OAuth provider attributes. The display
// name is split on the first space: first token becomes the first name, the
// remainder the last name.
func NewSocialUser(email, displayName, provider, providerId, pictureURL string) *User {
	first, last := splitDisplayName(displayName)
	now := time.Now()
	return &User{
		CreatedAt:       now,
		UpdatedAt:       now,
		Email:           email,
		Password:        SocialPasswordMarker,
		FirstName:       first,
		LastName:        last,
		Role:            RolePublic,
		EmailVerified:   true,
		Status:          StatusActive,
		Provider:        provider,
		ProviderId:      providerId,
		ProfileImageURL: pictureURL,
	}
}

func splitDisplayName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func (u *User) validate() error {
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("email is malformed")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword fails for social-only accounts since the marker is not a
// valid bcrypt hash.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) ChangePassword(newPassword string) error {
	u.Password = newPassword
	if err := u.HashPassword(); err != nil {
		return err
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (u *User) SetEmailVerified(verified bool) {
	u.EmailVerified = verified
	u.UpdatedAt = time.Now()
}

// LinkProvider attaches an external identity to an existing local account.
// The password hash is left untouched so local login keeps working.
func (u *User) LinkProvider(provider, providerId string) {
	u.Provider = provider
	u.ProviderId = providerId
	u.EmailVerified = true
	u.UpdatedAt = time.Now()
}

func (u *User) UpdateName(firstName, lastName string) {
	u.FirstName = firstName
	u.LastName = lastName
	u.UpdatedAt = time.Now()
}

func (u *User) Touch() {
	u.UpdatedAt = time.Now()
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
