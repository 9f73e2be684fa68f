package handler

import (
	"net/http"

	"nutriledger/internal/delivery/api/response"
	"nutriledger/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and which store is serving.
type HealthHandler struct {
	status repository.StoreStatus
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(status repository.StoreStatus) *HealthHandler {
	return &HealthHandler{status: status}
}

// HealthCheck never touches the store; an unconfigured store is reported as degraded.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	state := "ok"
	if !h.status.Configured() {
		state = "degraded"
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"status": state,
		"store": map[string]any{
			"backend":    h.status.Backend(),
			"configured": h.status.Configured(),
		},
	})
}
