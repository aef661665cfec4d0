package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"datasight/app"
	"datasight/domain/core"
	"datasight/internal"
	"datasight/internal/config"
)

// Server is the JSON API surface around the analysis engine
type Server struct {
	router   *gin.Engine
	analyzer *app.AnalyzerService
	insights *app.InsightService
	cfg      *config.Config
	log      *internal.Logger

	// Analyzed datasets are held in memory for the lifetime of the
	// process only; nothing is persisted.
	mu      sync.RWMutex
	results map[core.DatasetID]*app.AnalysisResult
}

// NewServer creates the API server and registers its routes
func NewServer(cfg *config.Config, analyzer *app.AnalyzerService, insights *app.InsightService, log *internal.Logger) *Server {
	if log == nil {
		log = internal.DefaultLogger
	}
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:   gin.New(),
		analyzer: analyzer,
		insights: insights,
		cfg:      cfg,
		log:      log,
		results:  make(map[core.DatasetID]*app.AnalysisResult),
	}

	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/datasets/:id", s.handleDataset)
		api.GET("/datasets/:id/insights", s.handleInsights)
		api.GET("/datasets/:id/correlations", s.handleCorrelations)
		api.GET("/datasets/:id/outliers", s.handleOutliers)
		api.GET("/datasets/:id/trends", s.handleTrends)
		api.POST("/datasets/:id/ask", s.handleAsk)
	}
}

// Run starts the HTTP listener
func (s *Server) Run() error {
	s.log.Info("api server listening on :%s", s.cfg.Server.Port)
	return s.router.Run(":" + s.cfg.Server.Port)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) store(result *app.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.Info.ID] = result
}

func (s *Server) lookup(id string) (*app.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[core.DatasetID(id)]
	return result, ok
}
