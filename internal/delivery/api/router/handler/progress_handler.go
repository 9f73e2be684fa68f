package handler

import (
	"log/slog"
	"net/http"

	"nutriledger/internal/delivery/api/response"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxLeaderboardLimit = 500

// ProgressHandler serves the daily dashboard and the leaderboard.
type ProgressHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewProgressHandler is the constructor for ProgressHandler, injected by Fx.
func NewProgressHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProgress returns totals against targets for ?date=YYYY-MM-DD, today by default.
func (h *ProgressHandler) GetProgress(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetProgress(c.Request().Context(), session, c.QueryParam("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProgressResponse(output))
}

// GetLeaderboard ranks users by points. ?limit caps the result.
func (h *ProgressHandler) GetLeaderboard(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("limit must be an integer")
	}
	if limit < 0 || limit > maxLeaderboardLimit {
		return domainerrors.ErrValidationFailed.WithDetails("limit is out of range")
	}

	entries, err := h.uc.Leaderboard(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]leaderboardEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, leaderboardEntryView{
			Position:   e.Position,
			UserID:     e.UserID,
			Username:   e.Username,
			RankPoints: e.RankPoints,
			Tier:       e.Tier,
		})
	}

	return response.Success(c, http.StatusOK, views)
}
