package controllers

import (
	"net/http"

	"github.com/blogem/petition-desk/services"
)

// HealthController reports liveness and the persistence state
type HealthController struct {
	services *services.Services
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services) *HealthController {
	return &HealthController{services: services}
}

type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// Health handles GET /health
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Entries.Ready(); err != nil {
		RespondWithJson(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "degraded",
			Service:  "petition-desk",
			Database: "unavailable",
		})
		return
	}

	RespondWithJson(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Service:  "petition-desk",
		Database: "available",
	})
}
