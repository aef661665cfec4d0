package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"datasight/app"
	"datasight/internal"
	"datasight/internal/testkit"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is a small HTML dashboard that runs the demo dataset through the
// full analysis pipeline. It exists for local inspection; the JSON API
// is the real integration surface.
type App struct {
	router    *chi.Mux
	analyzer  *app.AnalyzerService
	insights  *app.InsightService
	templates *template.Template
	log       *internal.Logger
	port      string
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates the dashboard application
func NewApp(cfg Config, analyzer *app.AnalyzerService, insights *app.InsightService, log *internal.Logger) (*App, error) {
	if log == nil {
		log = internal.DefaultLogger
	}

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		analyzer:  analyzer,
		insights:  insights,
		templates: templates,
		log:       log,
		port:      cfg.Port,
	}

	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)
	a.setupRoutes()

	return a, nil
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/report", a.handleReport)
}

// Run starts the dashboard listener
func (a *App) Run() error {
	a.log.Info("ui dashboard listening on :%s", a.port)
	return http.ListenAndServe(":"+a.port, a.router)
}

// Router exposes the chi mux for tests
func (a *App) Router() *chi.Mux {
	return a.router
}

// demoResult analyzes the seeded demo dataset
func (a *App) demoResult(r *http.Request) (*app.AnalysisResult, error) {
	source := testkit.NewGenerator(42).SalesDataset(60)
	return a.analyzer.AnalyzeSource(r.Context(), source)
}
