package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/solo-mizan/goru-club/internal/models"
	"github.com/solo-mizan/goru-club/internal/services"
)

type DepositHandler struct {
	Service *services.DepositService
}

func NewDepositHandler(service *services.DepositService) *DepositHandler {
	return &DepositHandler{Service: service}
}

// List returns all deposits, most recent first
func (h *DepositHandler) List(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if deposits == nil {
		deposits = []models.Deposit{}
	}
	respondJSON(w, http.StatusOK, deposits)
}

// Get returns a deposit by id
func (h *DepositHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Deposit not found")
		return
	}

	deposit, err := h.Service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deposit)
}

// ListByMember returns one member's deposits, most recent first
func (h *DepositHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(mux.Vars(r)["memberId"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Member not found")
		return
	}

	deposits, err := h.Service.ListByMember(r.Context(), memberID)
	if err != nil {
		respondError(w, err)
		return
	}

	if deposits == nil {
		deposits = []models.Deposit{}
	}
	respondJSON(w, http.StatusOK, deposits)
}

// Create creates a new deposit for an existing member
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deposit, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, deposit)
}

// Update partially updates a deposit; the member reference is immutable
func (h *DepositHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Deposit not found")
		return
	}

	var req models.UpdateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deposit, err := h.Service.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deposit)
}

// Delete removes a deposit unconditionally
func (h *DepositHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Deposit not found")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMsg(w, http.StatusOK, "Deposit removed")
}

// Summary returns the deposit statistics computed from current records
func (h *DepositHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
