// Package http provides the JSON API over the review workflow.
package http

import (
	"context"
	"log/slog"
	"net"

	"github.com/labstack/echo/v4"

	evaluator "github.com/Norikachi123/Container-Evaluator"
	"github.com/Norikachi123/Container-Evaluator/review"
)

// DocumentExporter renders an inspection's documents and stores them,
// returning the stored document's URL.
type DocumentExporter interface {
	ExportInvoice(ctx context.Context, insp *evaluator.Inspection) (string, error)
	ExportReport(ctx context.Context, insp *evaluator.Inspection) (string, error)
}

// Server represents the HTTP server with all its dependencies.
type Server struct {
	echo   *echo.Echo
	ln     net.Listener
	logger *slog.Logger

	// Configuration
	Addr   string
	Domain string

	// API tokens mapped to their principals.
	tokens map[string]*evaluator.User

	// Domain services
	review      *review.Service
	inspections evaluator.InspectionService
	exporter    DocumentExporter
}

// Config holds the configuration for creating a new Server.
type Config struct {
	Addr   string
	Domain string
	Logger *slog.Logger

	// APITokens maps bearer tokens to the users they authenticate.
	APITokens map[string]*evaluator.User

	// Domain services
	ReviewService     *review.Service
	InspectionService evaluator.InspectionService
	Exporter          DocumentExporter
}

// NewServer creates a new HTTP server with the given configuration.
func NewServer(cfg Config) *Server {
	s := &Server{
		Addr:        cfg.Addr,
		Domain:      cfg.Domain,
		logger:      cfg.Logger,
		tokens:      cfg.APITokens,
		review:      cfg.ReviewService,
		inspections: cfg.InspectionService,
		exporter:    cfg.Exporter,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Register middleware and routes
	s.registerMiddleware()
	s.registerRoutes()

	return s
}

// Echo returns the underlying Echo instance.
// Use sparingly - prefer registering routes through Server methods.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Open starts the HTTP server.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.echo.Server.Serve(s.ln); err != nil {
			s.logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	s.logger.Info("server started", slog.String("addr", s.Addr))
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// URL returns the URL of the server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}
