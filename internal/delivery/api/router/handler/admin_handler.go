package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"nutriledger/internal/delivery/api/response"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves operator-only account actions.
type AdminHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.UserUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ApproveUser lets the user behind :id log in.
func (h *AdminHandler) ApproveUser(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("id"))
	if userID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	if err := h.uc.Approve(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": userID, "approved": true})
}
