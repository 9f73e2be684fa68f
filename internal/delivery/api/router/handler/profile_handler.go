package handler

import (
	"log/slog"
	"net/http"

	"nutriledger/internal/delivery/api/response"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.UserUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Profile(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &profileResponse{
		User:    newUserView(output.User),
		Targets: output.Targets,
		Rank:    output.Rank,
	})
}

// UpdateTargets applies a partial goal update, e.g. {"goals":{"protein":180}}.
func (h *ProfileHandler) UpdateTargets(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req updateTargetsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid targets input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	goals := make(map[entity.Nutrient]float64, len(req.Goals))
	for name, value := range req.Goals {
		goals[entity.Nutrient(name)] = value
	}

	user, err := h.uc.UpdateTargets(c.Request().Context(), session, &usecase.UpdateTargetsInput{Goals: goals})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}
