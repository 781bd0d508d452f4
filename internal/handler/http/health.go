package http

import (
	"net/http"

	"github.com/MKhiriev/go-wise/internal/app"
	"github.com/MKhiriev/go-wise/internal/utils"
	"github.com/MKhiriev/go-wise/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{Message: app.DetailHealthy}, http.StatusOK)
}
