package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/domain/entities"
)

const userContextKey = "authUser"

// CurrentUser returns the authenticated user established by the auth gate,
// or nil for anonymous requests.
func CurrentUser(c echo.Context) *entities.User {
	user, _ := c.Get(userContextKey).(*entities.User)
	return user
}

func setCurrentUser(c echo.Context, user *entities.User) {
	c.Set(userContextKey, user)
}
