package handlers

import (
	"net/http"

	"github.com/etfgrowth/analyzer/internal/version"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports process-level liveness. Provider reachability is not
// probed; a slow or failing provider degrades individual analyses instead.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with HealthResponse
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests to retrieve the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{AppVersion: version.Version})
}
