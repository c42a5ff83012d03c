package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/service"
)

type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

func pathID(r *http.Request, name string) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

type createEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Capacity    int32  `json:"capacity"`
	PhotoURL    string `json:"photo_url"`
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventSvc.ListEvents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}
	event, err := h.eventSvc.GetEvent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" || req.Description == "" || req.Location == "" || req.Category == "" || req.Date == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "title, description, location, category and date are required"})
		return
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Date:        req.Date,
		Capacity:    req.Capacity,
		PhotoURL:    req.PhotoURL,
	}
	if err := h.eventSvc.CreateEvent(r.Context(), CallerFromContext(r.Context()), event); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}

	var upd domain.EventUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	event, err := h.eventSvc.UpdateEvent(r.Context(), CallerFromContext(r.Context()), id, &upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}
	if err := h.eventSvc.DeleteEvent(r.Context(), CallerFromContext(r.Context()), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "event deleted successfully"})
}
