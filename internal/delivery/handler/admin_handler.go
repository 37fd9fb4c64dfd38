package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/logging"
)

type AdminHandler struct {
	adminService interfaces.AdminService
	log          logging.Logger
}

func NewAdminHandler(adminService interfaces.AdminService, log logging.Logger) *AdminHandler {
	return &AdminHandler{adminService: adminService, log: log}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	result, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteUsers is the destructive operator escape hatch.
func (h *AdminHandler) DeleteUsers(c echo.Context) error {
	var body struct {
		Ids []uint `json:"ids"`
	}
	if err := c.Bind(&body); err != nil || len(body.Ids) == 0 {
		return c.JSON(http.StatusBadRequest, errorBody("No user ids provided"))
	}

	operatorEmail := ""
	if operator := CurrentUser(c); operator != nil {
		operatorEmail = operator.Email
	}
	h.log.Warn(c.Request().Context(), "admin bulk delete requested", "operator", operatorEmail, "count", len(body.Ids))

	deleted, err := h.adminService.DeleteUsers(c.Request().Context(), body.Ids)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Users deleted",
		"deleted": deleted,
	})
}
