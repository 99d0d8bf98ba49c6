package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/solo-mizan/goru-club/internal/apperr"
	"github.com/solo-mizan/goru-club/internal/models"
	"github.com/solo-mizan/goru-club/internal/services"
)

// maxReceiptFormSize bounds multipart parsing for receipt uploads
const maxReceiptFormSize = 20 << 20 // 20 MB

type CowPurchaseHandler struct {
	Service *services.CowPurchaseService
}

func NewCowPurchaseHandler(service *services.CowPurchaseService) *CowPurchaseHandler {
	return &CowPurchaseHandler{Service: service}
}

// List returns all cow purchases, most recent first
func (h *CowPurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if purchases == nil {
		purchases = []models.CowPurchase{}
	}
	respondJSON(w, http.StatusOK, purchases)
}

// Get returns a cow purchase by id
func (h *CowPurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Cow purchase not found")
		return
	}

	purchase, err := h.Service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, purchase)
}

// Create creates a cow purchase. Multipart requests may carry an
// optional receipt image in the "receipt" file field; plain JSON
// bodies are accepted when no file is attached.
func (h *CowPurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCowPurchaseRequest
	var receipt *services.ReceiptFile

	if isMultipart(r) {
		form, file, err := h.parseForm(w, r)
		if err != nil {
			return // response already written
		}
		if file != nil {
			defer file.content.Close()
			receipt = &services.ReceiptFile{Content: file.content, Filename: file.name}
		}
		req = models.CreateCowPurchaseRequest{
			Amount:    form.amount,
			Date:      form.date,
			MemberIDs: form.memberIDs,
		}
		if form.notes != nil {
			req.Notes = *form.notes
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	purchase, err := h.Service.Create(r.Context(), req, receipt)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, purchase)
}

// Update partially updates a cow purchase. A new receipt in the
// multipart form replaces (and removes) the previous stored file.
func (h *CowPurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Cow purchase not found")
		return
	}

	var req models.UpdateCowPurchaseRequest
	var receipt *services.ReceiptFile

	if isMultipart(r) {
		form, file, err := h.parseForm(w, r)
		if err != nil {
			return
		}
		if file != nil {
			defer file.content.Close()
			receipt = &services.ReceiptFile{Content: file.content, Filename: file.name}
		}
		req = models.UpdateCowPurchaseRequest{
			Date:      form.date,
			MemberIDs: form.memberIDs,
			Notes:     form.notes,
		}
		if form.amountSet {
			req.Amount = &form.amount
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	purchase, err := h.Service.Update(r.Context(), id, req, receipt)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, purchase)
}

// Delete removes a cow purchase and, best-effort, its stored receipt
func (h *CowPurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMsg(w, http.StatusNotFound, "Cow purchase not found")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMsg(w, http.StatusOK, "Cow purchase removed")
}

// Summary returns the purchase statistics computed from current records
func (h *CowPurchaseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

type purchaseForm struct {
	amount    float64
	amountSet bool
	date      *time.Time
	memberIDs []int
	notes     *string
}

type uploadedFile struct {
	content multipart.File
	name    string
}

// parseForm reads the multipart purchase fields. Invalid numeric input
// is a field-level validation failure, not a generic bad request. On
// error the response has already been written and nil is returned.
func (h *CowPurchaseHandler) parseForm(w http.ResponseWriter, r *http.Request) (*purchaseForm, *uploadedFile, error) {
	if err := r.ParseMultipartForm(maxReceiptFormSize); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, nil, err
	}

	var fields []apperr.FieldError
	form := &purchaseForm{}
	values := r.MultipartForm.Value

	if vals, ok := values["amount"]; ok && len(vals) > 0 {
		amount, err := strconv.ParseFloat(vals[0], 64)
		if err != nil {
			fields = append(fields, apperr.FieldError{Field: "amount", Msg: "Amount is required and must be a positive number"})
		} else {
			form.amount = amount
			form.amountSet = true
		}
	}

	if vals, ok := values["date"]; ok && len(vals) > 0 && vals[0] != "" {
		date, err := time.Parse(time.RFC3339, vals[0])
		if err != nil {
			fields = append(fields, apperr.FieldError{Field: "date", Msg: "Date must be in RFC 3339 format"})
		} else {
			form.date = &date
		}
	}

	if vals, ok := values["member_ids"]; ok {
		form.memberIDs = []int{}
		for _, v := range vals {
			// Accept both repeated fields and one comma-separated value
			for _, part := range strings.Split(v, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, err := strconv.Atoi(part)
				if err != nil {
					fields = append(fields, apperr.FieldError{Field: "member_ids", Msg: "Member ids must be numbers"})
					continue
				}
				form.memberIDs = append(form.memberIDs, id)
			}
		}
	}

	if vals, ok := values["notes"]; ok && len(vals) > 0 {
		form.notes = &vals[0]
	}

	if len(fields) > 0 {
		err := apperr.Validation(fields...)
		respondError(w, err)
		return nil, nil, err
	}

	file, header, err := r.FormFile("receipt")
	if err == http.ErrMissingFile {
		return form, nil, nil
	}
	if err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid receipt file")
		return nil, nil, err
	}

	return form, &uploadedFile{content: file, name: header.Filename}, nil
}
