// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service and store layers.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alifrahman-dev/event-registration-service/internal/model"
	"github.com/alifrahman-dev/event-registration-service/internal/repository"
	"github.com/alifrahman-dev/event-registration-service/internal/service"
	"github.com/go-chi/chi/v5"
)

// UserStore is the persistence surface the API needs for accounts.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// RegistrationStore is the persistence surface the API needs for
// attendee-to-event links. *repository.RegistrationRepository
// satisfies it.
type RegistrationStore interface {
	Register(ctx context.Context, userID, eventID int64) (*model.Registration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Registration, error)
}

// EventHandler holds all HTTP handlers for the registration API.
type EventHandler struct {
	svc   *service.EventService
	users UserStore
	regs  RegistrationStore

	// Fixed administrator pair checked before the user store on login.
	adminUsername string
	adminPassword string
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.EventService, users UserStore, regs RegistrationStore, adminUsername, adminPassword string) *EventHandler {
	return &EventHandler{
		svc:           svc,
		users:         users,
		regs:          regs,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// RegisterRoutes mounts the API route table on r.
func RegisterRoutes(r chi.Router, h *EventHandler) {
	r.Get("/health", HealthCheck)

	r.Route("/api", func(api chi.Router) {
		api.Get("/events", h.ListEvents)
		api.Post("/events", h.CreateEvent)
		api.Get("/events/{id}", h.GetEvent)
		api.Put("/events/{id}", h.UpdateEvent)
		api.Delete("/events/{id}", h.DeleteEvent)
		api.Post("/events/{id}/register", h.Register)
		api.Get("/events/{id}/registrations", h.ListRegistrations)

		api.Post("/signup", h.Signup)
		api.Post("/login", h.Login)
	})
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func eventID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeStoreError maps a store failure that is not handled explicitly
// by the calling handler onto the normalized status codes.
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, repository.ErrUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	writeError(w, http.StatusInternalServerError, fallback)
}

// ─── Events ───────────────────────────────────────────────────────────────────

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event model.Event
	if err := decodeJSON(r, &event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.CreateEvent(r.Context(), &event); err != nil {
		writeStoreError(w, err, "failed to create event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		writeStoreError(w, err, "failed to list events")
		return
	}

	// Return an empty array rather than null for better client compatibility.
	if events == nil {
		events = []model.Event{}
	}

	writeJSON(w, http.StatusOK, events)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeStoreError(w, err, "failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// UpdateEvent handles PUT /api/events/{id}
// The path id wins over any id carried in the body.
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var event model.Event
	if err := decodeJSON(r, &event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	event.ID = id

	if err := h.svc.UpdateEvent(r.Context(), &event); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeStoreError(w, err, "failed to update event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeStoreError(w, err, "failed to delete event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

// ─── Registrations ────────────────────────────────────────────────────────────

type registerRequest struct {
	UserID int64 `json:"user_id"`
}

// Register handles POST /api/events/{id}/register
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.regs.Register(r.Context(), req.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyRegistered):
			writeError(w, http.StatusConflict, "user is already registered for this event")
		case errors.Is(err, repository.ErrInvalidReference):
			writeError(w, http.StatusNotFound, "user or event not found")
		default:
			writeStoreError(w, err, "failed to register")
		}
		return
	}

	writeJSON(w, http.StatusCreated, reg)
}

// ListRegistrations handles GET /api/events/{id}/registrations
func (h *EventHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	regs, err := h.regs.ListByEvent(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "failed to list registrations")
		return
	}

	if regs == nil {
		regs = []model.Registration{}
	}

	writeJSON(w, http.StatusOK, regs)
}

// ─── Accounts ─────────────────────────────────────────────────────────────────

// Signup handles POST /api/signup
func (h *EventHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.users.Create(r.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		writeStoreError(w, err, "failed to create user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Login handles POST /api/login
//
// A login succeeds when the submitted pair equals the configured
// administrator pair, or matches a stored user verbatim. No session or
// token is issued; authentication is stateless.
func (h *EventHandler) Login(w http.ResponseWriter, r *http.Request) {
	var attempt model.User
	if err := decodeJSON(r, &attempt); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if attempt.Username == h.adminUsername && attempt.Password == h.adminPassword {
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
		return
	}

	user, err := h.users.GetByUsername(r.Context(), attempt.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeStoreError(w, err, "failed to look up user")
		return
	}

	if user.Password != attempt.Password {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
