package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/solo-mizan/goru-club/internal/apperr"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMsg(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"msg": msg})
}

// respondError maps a service error to its HTTP shape. Validation
// failures carry field detail; store and file faults are logged and
// surfaced as a generic server error without internal detail.
func respondError(w http.ResponseWriter, err error) {
	if ve, ok := apperr.IsValidation(err); ok {
		respondJSON(w, http.StatusBadRequest, map[string]any{"errors": ve.Errors})
		return
	}
	if nf, ok := apperr.IsNotFound(err); ok {
		respondMsg(w, http.StatusNotFound, nf.Entity+" not found")
		return
	}
	if ce, ok := apperr.IsConflict(err); ok {
		respondMsg(w, http.StatusConflict, ce.Msg)
		return
	}

	slog.Error("request failed", "error", err)
	respondMsg(w, http.StatusInternalServerError, "Server Error")
}
