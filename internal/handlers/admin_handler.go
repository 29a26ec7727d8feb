package handlers

import (
	"net/http"
	"strconv"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles the moderation endpoints, mounted behind basic auth
type AdminHandler struct {
	moderationService *services.ModerationService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(moderationService *services.ModerationService) *AdminHandler {
	return &AdminHandler{moderationService: moderationService}
}

// RegisterAdminRoutes registers moderation routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.PUT("/users/:id/ban", h.BanUser)
}

// BanUser bans or unbans a user, cascading the flag onto the user's
// comments and reactions
func (h *AdminHandler) BanUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	var req models.BanUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.moderationService.SetUserBan(c.Request().Context(), uint(userID), req.IsBanned, req.BanReason)
	if err != nil {
		if err == services.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
