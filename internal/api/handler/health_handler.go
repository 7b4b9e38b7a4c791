package handler

import (
	"net/http"

	"loan-predictor/internal/api/handler/dto"
)

type HealthHandler struct {
	modelVersion string
}

func NewHealthHandler(modelVersion string) *HealthHandler {
	return &HealthHandler{modelVersion: modelVersion}
}

// Health reports liveness. A running process always has a loaded model.
//
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", ModelVersion: h.modelVersion})
}
