package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lessoncard/app"
	"lessoncard/internal/config"
	"lessoncard/internal/session"
)

//go:embed templates/*
var embeddedFiles embed.FS

// sessionCookie carries the browser session ID holding the loaded batch.
const sessionCookie = "lessoncard_session"

// App represents the UI application
type App struct {
	router    *chi.Mux
	service   *app.CardService
	sessions  *session.Store
	templates *template.Template
	formURL   string
	port      string
}

// NewApp creates the UI application around the card service.
func NewApp(service *app.CardService, cfg *config.Config) (*App, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		service:   service,
		sessions:  session.NewStore(24 * time.Hour),
		templates: templates,
		formURL:   cfg.Form.URL,
		port:      cfg.Server.Port,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/reload", a.handleReload)
	a.router.Get("/cards/{id}/download", a.handleDownload)
	a.router.Get("/guide", a.handleGuide)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("Starting lesson card server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
