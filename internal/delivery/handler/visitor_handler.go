package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/logging"
)

type VisitorHandler struct {
	visitorService interfaces.VisitorService
	log            logging.Logger
}

func NewVisitorHandler(visitorService interfaces.VisitorService, log logging.Logger) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService, log: log}
}

// Track records the visit. Tracking problems never fail the request; the
// counter is cosmetic.
func (h *VisitorHandler) Track(c echo.Context) error {
	r := c.Request()
	ip := clientIP(r)

	if err := h.visitorService.Track(r.Context(), ip, r.UserAgent(), r.Referer()); err != nil {
		h.log.Warn(r.Context(), "visitor tracking failed", "error", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "visit recorded"})
}

func (h *VisitorHandler) Stats(c echo.Context) error {
	stats, err := h.visitorService.Stats(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// clientIP walks the proxy headers before falling back to the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
