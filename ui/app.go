package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"taxidash/app"
	"taxidash/internal"
	"taxidash/internal/config"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	reports   *app.ReportService
	templates *template.Template
	logger    *internal.Logger
}

// NewApp creates a new dashboard application
func NewApp(cfg *config.Config, logger *internal.Logger) (*App, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	funcMap := template.FuncMap{
		"printfFloat": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"printfP":     func(v float64) string { return fmt.Sprintf("%.4g", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		reports:   app.NewReportService(cfg.Data, logger),
		templates: templates,
		logger:    logger,
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
	a.router.Get("/api/report", a.handleReportJSON)
	a.router.Get("/export/xlsx", a.handleExportXLSX)
}

// Router exposes the chi mux, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server on the given port.
func (a *App) Serve(port string) error {
	addr := ":" + port
	a.logger.Info("dashboard listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
