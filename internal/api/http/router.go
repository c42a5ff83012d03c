package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything NewRouter needs to wire the API surface.
type Handlers struct {
	Auth         *AuthHandler
	Events       *EventHandler
	Registration *RegistrationHandler
	Users        *UserHandler
	Weather      *WeatherHandler
}

func NewRouter(h Handlers, mw *Middleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(jsonContentType)

	// Authentication.
	r.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/google", h.Auth.GoogleSignIn).Methods(http.MethodPost)

	// Events. Reads are public, writes are admin only.
	r.Handle("/events", mw.OptionalAuth(http.HandlerFunc(h.Events.List))).Methods(http.MethodGet)
	r.Handle("/events/{id}", mw.OptionalAuth(http.HandlerFunc(h.Events.Get))).Methods(http.MethodGet)
	r.Handle("/events", mw.RequireAdmin(http.HandlerFunc(h.Events.Create))).Methods(http.MethodPost)
	r.Handle("/events/{id}", mw.RequireAdmin(http.HandlerFunc(h.Events.Update))).Methods(http.MethodPut)
	r.Handle("/events/{id}", mw.RequireAdmin(http.HandlerFunc(h.Events.Delete))).Methods(http.MethodDelete)

	// Registrations.
	r.Handle("/events/{id}/registrations", mw.RequireAuth(http.HandlerFunc(h.Registration.Join))).Methods(http.MethodPost)
	r.Handle("/events/{id}/registrations", mw.RequireAuth(http.HandlerFunc(h.Registration.Cancel))).Methods(http.MethodDelete)
	r.Handle("/events/{id}/registrations", mw.RequireAdmin(http.HandlerFunc(h.Registration.ListForEvent))).Methods(http.MethodGet)
	r.HandleFunc("/events/{id}/tally", h.Registration.Tally).Methods(http.MethodGet)
	r.Handle("/registrations/mine", mw.RequireAuth(http.HandlerFunc(h.Registration.ListMine))).Methods(http.MethodGet)
	r.Handle("/registrations/{id}/status", mw.RequireAdmin(http.HandlerFunc(h.Registration.SetStatus))).Methods(http.MethodPatch)

	// Weather.
	r.HandleFunc("/weather", h.Weather.GetByCity).Methods(http.MethodGet)
	r.HandleFunc("/events/{id}/weather", h.Weather.GetByEvent).Methods(http.MethodGet)

	// User administration.
	r.Handle("/users", mw.RequireAdmin(http.HandlerFunc(h.Users.List))).Methods(http.MethodGet)
	r.Handle("/users", mw.RequireAdmin(http.HandlerFunc(h.Users.Create))).Methods(http.MethodPost)
	r.Handle("/users/{id}", mw.RequireAdmin(http.HandlerFunc(h.Users.Get))).Methods(http.MethodGet)
	r.Handle("/users/{id}", mw.RequireAdmin(http.HandlerFunc(h.Users.Update))).Methods(http.MethodPut)
	r.Handle("/users/{id}", mw.RequireAdmin(http.HandlerFunc(h.Users.Delete))).Methods(http.MethodDelete)
	r.Handle("/users/{id}/certificates", mw.RequireAdmin(http.HandlerFunc(h.Users.AddCertificate))).Methods(http.MethodPost)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
