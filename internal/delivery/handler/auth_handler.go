package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/application/command"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/logging"
)

type AuthHandler struct {
	authService  interfaces.AuthService
	sessionStore infrastructure.SessionStore
	log          logging.Logger
}

func NewAuthHandler(authService interfaces.AuthService, sessionStore infrastructure.SessionStore, log logging.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessionStore: sessionStore,
		log:          log,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
	}
	if cmd.Email == "" || cmd.Password == "" {
		return c.JSON(http.StatusBadRequest, errorBody("Email and password are required"))
	}

	result, err := h.authService.Register(c.Request().Context(), &cmd)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
	}

	result, err := h.authService.Login(c.Request().Context(), &cmd)
	if err != nil {
		// Bad credentials and unknown users answer identically.
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) GetProfile(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, errorBody("Authentication required"))
	}

	result, err := h.authService.GetProfile(c.Request().Context(), user.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, errorBody("Authentication required"))
	}

	var cmd command.UpdateProfileCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
	}

	result, err := h.authService.UpdateProfile(c.Request().Context(), user.Email, &cmd)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Logout drops the server-side session, if the browser carried one from the
// OAuth flow. Tokens themselves stay valid until expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessionStore.Delete(c.Request().Context(), cookie.Value); err != nil {
			h.log.Warn(c.Request().Context(), "session delete failed", "error", err)
		}
		c.SetCookie(expiredSessionCookie())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Successfully logged out",
	})
}
