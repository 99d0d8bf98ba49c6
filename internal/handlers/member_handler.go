package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/solo-mizan/goru-club/internal/models"
	"github.com/solo-mizan/goru-club/internal/services"
)

type MemberHandler struct {
	Service *services.MemberService
}

func NewMemberHandler(service *services.MemberService) *MemberHandler {
	return &MemberHandler{Service: service}
}

// List returns all members sorted by name
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if members == nil {
		members = []models.Member{}
	}
	respondJSON(w, http.StatusOK, members)
}

// ListWithDeposits returns all members with their computed deposit totals
func (h *MemberHandler) ListWithDeposits(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.ListWithTotals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if members == nil {
		members = []models.MemberWithTotal{}
	}
	respondJSON(w, http.StatusOK, members)
}

// Get returns a member by id
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Member not found")
		return
	}

	member, err := h.Service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// Create creates a new member
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

// Update partially updates a member; absent fields are left untouched
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Member not found")
		return
	}

	var req models.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.Service.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// Delete removes a member without deposits; 409 otherwise
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Member not found")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMsg(w, http.StatusOK, "Member removed")
}
