package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dasbor/app"
)

// App is the headless JSON API variant of the dashboard, for callers
// that render elsewhere and only want the converted data.
type App struct {
	router  *chi.Mux
	service *app.DatasetService
}

// NewApp creates a new JSON API application
func NewApp(service *app.DatasetService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/healthz", a.handleHealth)
	a.router.Get("/api/sheets", a.handleSheets)
	a.router.Get("/api/sheets/{name}", a.handleSheet)
	a.router.Get("/api/sheets/{name}/profile", a.handleSheetProfile)

	return a
}

// Run starts the API server on the given port
func (a *App) Run(port string) error {
	log.Printf("[App] JSON API listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

// Router exposes the mux, mainly for tests
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleSheets(w http.ResponseWriter, r *http.Request) {
	ds, err := a.service.Current(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load dataset"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"source":      ds.Source,
		"sheet_names": ds.SheetNames,
		"sheets":      ds.Sheets,
	})
}

func (a *App) handleSheet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ds, err := a.service.Current(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load dataset"})
		return
	}

	raw, ok := ds.Sheets[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("sheet %q not found", name)})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"name": name, "content": raw})
}

func (a *App) handleSheetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ds, err := a.service.Current(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load dataset"})
		return
	}

	prof, ok := ds.Profiles[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("no profile for sheet %q", name)})
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[App] Failed to encode response: %v", err)
	}
}
