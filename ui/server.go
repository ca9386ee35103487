package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dasbor/app"
	"dasbor/domain/column"
	"dasbor/internal/format"
)

// Server is the gin-backed dashboard web server
type Server struct {
	router    *gin.Engine
	service   *app.DatasetService
	templates *template.Template
}

// NewServer creates a new dashboard server
func NewServer(service *app.DatasetService) *Server {
	return &Server{
		router:  gin.Default(),
		service: service,
	}
}

// Initialize parses templates and wires the routes
func (s *Server) Initialize() error {
	funcMap := template.FuncMap{
		"formatNumber":   format.Number,
		"formatCurrency": format.Currency,
		"isDateColumn":   column.IsDateColumn,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = tmpl

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static files: %w", err)
	}
	s.router.StaticFS("/static", http.FS(staticFS))

	s.setupRoutes()
	return nil
}

// setupRoutes registers all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleDashboard)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/sheets", s.handleSheets)
		api.GET("/sheets/:name", s.handleSheet)
		api.GET("/sheets/:name/profile", s.handleSheetProfile)
		api.GET("/snapshots", s.handleSnapshots)
		api.POST("/reload", s.handleReload)
	}
}

// Run starts the server on the given port
func (s *Server) Run(port string) error {
	log.Printf("[Server] Dashboard listening on :%s", port)
	return s.router.Run(":" + port)
}
