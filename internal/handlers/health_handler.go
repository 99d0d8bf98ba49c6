package handlers

import (
	"net/http"

	"github.com/solo-mizan/goru-club/internal/health"
	"github.com/solo-mizan/goru-club/internal/monitoring"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: checker}
}

// Check reports process and store health; the server answers even when
// the store is down
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Checker.Check())
}

// System reports a host resource snapshot
func (h *HealthHandler) System(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, monitoring.Snapshot())
}
