package health

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/dto"
	"github.com/GlebRadaev/topups/pkg/utils"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=health
type Service interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	healthService Service
}

func New(healthService Service) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Root godoc
//
//	@Summary	Service banner
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Router		/ [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "API is running"})
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	dto.StatusResponseDTO
//	@Router		/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{OK: true})
}

// Ready godoc
//
//	@Summary		Readiness probe
//	@Description	Checks that both record stores answer.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dto.StatusResponseDTO
//	@Failure		503	{object}	dto.StatusResponseDTO
//	@Router			/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.healthService.Ready(r.Context()); err != nil {
		zap.L().Warn("readiness check failed", zap.Error(err))
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, dto.StatusResponseDTO{OK: false, Error: err.Error()})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{OK: true})
}
