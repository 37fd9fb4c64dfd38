package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thehfpv/backend/internal/domain/entities"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTService issues and validates HS256 bearer tokens. The subject claim is
// the user's email; expiry is the only invalidation mechanism.
type JWTService struct {
	secretKey []byte
	validity  time.Duration
}

func NewJWTService(secret string, validity time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		validity:  validity,
	}
}

func (j *JWTService) Issue(user *entities.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.validity)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ExtractSubject parses and verifies the token, returning the email subject.
// Malformed, badly signed and expired tokens all fail.
func (j *JWTService) ExtractSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secretKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// IsValid reports whether the token belongs to the given user and has not
// expired.
func (j *JWTService) IsValid(tokenString string, user *entities.User) bool {
	subject, err := j.ExtractSubject(tokenString)
	if err != nil {
		return false
	}
	return subject == user.Email
}
