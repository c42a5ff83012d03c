package http

import (
	"net/http"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/service"
)

type RegistrationHandler struct {
	regSvc service.RegistrationService
}

func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// Join handles POST /events/{id}/registrations.
func (h *RegistrationHandler) Join(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}

	reg, err := h.regSvc.Join(r.Context(), CallerFromContext(r.Context()), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, reg)
}

// Cancel handles DELETE /events/{id}/registrations. Only the caller's
// own registration can be removed this way.
func (h *RegistrationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}

	reg, err := h.regSvc.Cancel(r.Context(), CallerFromContext(r.Context()), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reg)
}

// ListMine handles GET /registrations/mine.
func (h *RegistrationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	regs, err := h.regSvc.ListMine(r.Context(), CallerFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	if regs == nil {
		regs = []domain.Registration{}
	}
	respondJSON(w, http.StatusOK, regs)
}

// ListForEvent handles GET /events/{id}/registrations (admin view).
func (h *RegistrationHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}

	regs, err := h.regSvc.ListForEvent(r.Context(), CallerFromContext(r.Context()), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	if regs == nil {
		regs = []domain.Registration{}
	}
	respondJSON(w, http.StatusOK, regs)
}

// SetStatus handles PATCH /registrations/{id}/status.
func (h *RegistrationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	regID, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrRegistrationNotFound)
		return
	}

	var req setStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reg, err := h.regSvc.SetStatus(r.Context(), CallerFromContext(r.Context()), regID, domain.RegistrationStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reg)
}

// Tally handles GET /events/{id}/tally.
func (h *RegistrationHandler) Tally(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}

	tally, err := h.regSvc.Tally(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tally)
}
