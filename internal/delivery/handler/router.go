package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Routers holds the handlers the router wires up.
type Routers struct {
	Auth    *AuthHandler
	OAuth   *OAuthHandler
	Visitor *VisitorHandler
	Upload  *UploadHandler
	Admin   *AdminHandler
}

// NewRouter assembles the echo instance: recovery and CORS first, then the
// global limiter, the auth gate and the access policy, then routes.
func NewRouter(r Routers, gate echo.MiddlewareFunc, policy *AccessPolicy, globalLimit echo.MiddlewareFunc, frontendURL, uploadDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(globalLimit)
	e.Use(gate)
	e.Use(policy.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/auth/register", r.Auth.Register)
	e.POST("/auth/login", r.Auth.Login)
	e.GET("/auth/profile", r.Auth.GetProfile)
	e.PUT("/auth/profile", r.Auth.UpdateProfile)
	e.POST("/auth/logout", r.Auth.Logout)

	e.GET("/oauth2/authorization/google", r.OAuth.Authorize)
	e.GET("/login/oauth2/code/google", r.OAuth.Callback)

	e.POST("/visitor/track", r.Visitor.Track)
	e.GET("/visitor/stats", r.Visitor.Stats)

	e.POST("/upload/image", r.Upload.UploadImage)
	e.Static("/uploads", uploadDir)

	e.GET("/admin/users", r.Admin.ListUsers)
	e.DELETE("/admin/users", r.Admin.DeleteUsers)

	return e
}
