package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/logging"
)

const (
	sessionCookieName = "THEHFPV_SESSION"
	stateCookieName   = "oauth_state"
)

// OAuthHandler drives the browser through the Google authorization-code flow
// and bridges the redirect back into the token model: reconcile, issue a
// token, park it in the session store, send the browser to the front end.
type OAuthHandler struct {
	oauthClient  *infrastructure.GoogleOAuthClient
	oauthService interfaces.OAuthService
	jwtService   *infrastructure.JWTService
	sessionStore infrastructure.SessionStore
	frontendURL  string
	sessionTTL   time.Duration
	log          logging.Logger
}

func NewOAuthHandler(
	oauthClient *infrastructure.GoogleOAuthClient,
	oauthService interfaces.OAuthService,
	jwtService *infrastructure.JWTService,
	sessionStore infrastructure.SessionStore,
	frontendURL string,
	sessionTTL time.Duration,
	log logging.Logger,
) *OAuthHandler {
	return &OAuthHandler{
		oauthClient:  oauthClient,
		oauthService: oauthService,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		frontendURL:  frontendURL,
		sessionTTL:   sessionTTL,
		log:          log,
	}
}

// Authorize starts the flow: bind a random state to the browser and hand it
// to Google.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	state, err := h.oauthClient.StateToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("An unexpected error occurred"))
	}

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.oauthClient.AuthURL(state))
}

// Callback finishes the flow. Provider-side cancellation is told apart from
// genuine failure by the error parameter Google sends back.
func (h *OAuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	if errParam := c.QueryParam("error"); errParam != "" {
		if errParam == "access_denied" {
			h.log.Info(ctx, "oauth flow cancelled by user")
			return c.Redirect(http.StatusFound, h.frontendURL+"/login?error=oauth_cancelled")
		}
		h.log.Warn(ctx, "oauth provider error", "error", errParam)
		return c.Redirect(http.StatusFound, h.frontendURL+"/login?error=oauth_failed")
	}

	stateCookie, err := c.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		h.log.Warn(ctx, "oauth state mismatch")
		return c.Redirect(http.StatusFound, h.frontendURL+"/login?error=oauth_failed")
	}

	identity, err := h.oauthClient.Exchange(ctx, c.QueryParam("code"))
	if err != nil {
		h.log.Error(ctx, "oauth exchange failed", "error", err)
		return c.Redirect(http.StatusFound, h.frontendURL+"/login?error=oauth_failed")
	}

	user, err := h.oauthService.Reconcile(ctx, identity)
	if err != nil {
		h.log.Error(ctx, "oauth reconciliation failed", "error", err)
		return c.Redirect(http.StatusFound, h.frontendURL+"/login?error=oauth_failed")
	}

	token, err := h.jwtService.Issue(user)
	if err != nil {
		h.log.Error(ctx, "token issue failed", "error", err)
		return c.Redirect(http.StatusFound, h.frontendURL+"/login?error=oauth_failed")
	}

	sessionID := uuid.NewString()
	session := &infrastructure.Session{User: user, Token: token, Authenticated: true}
	if err := h.sessionStore.Set(ctx, sessionID, session, h.sessionTTL); err != nil {
		h.log.Warn(ctx, "session store failed", "error", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(expiredStateCookie())

	return c.Redirect(http.StatusFound, h.frontendURL+"/?oauth_success=true&token="+token)
}

func expiredStateCookie() *http.Cookie {
	return &http.Cookie{Name: stateCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true}
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true}
}
