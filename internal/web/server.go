package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/diacheck/internal/domain"
	"github.com/emiliopalmerini/diacheck/internal/ports"
	"github.com/emiliopalmerini/diacheck/internal/predictor"
)

//go:embed static/*
var staticFiles embed.FS

// Predictor validates and classifies one submission.
type Predictor interface {
	Predict(ctx context.Context, raw domain.RawInput, source string) (*predictor.Result, error)
}

type Server struct {
	router          *http.ServeMux
	port            int
	predictor       Predictor
	metrics         ports.MetricsRecorder
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func NewServer(port int, p Predictor, metrics ports.MetricsRecorder, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		router:          http.NewServeMux(),
		port:            port,
		predictor:       p,
		metrics:         metrics,
		logger:          logger,
		shutdownTimeout: 5 * time.Second,
	}
	s.setupRoutes()
	return s
}

// WithShutdownTimeout sets how long Start waits for in-flight requests.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	if d > 0 {
		s.shutdownTimeout = d
	}
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("POST /predict", limitBody(s.handlePredict))

	// Downloads
	s.router.HandleFunc("POST /report", limitBody(s.handleReport))

	// API
	s.router.HandleFunc("POST /api/predict", limitBody(s.handleAPIPredict))
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return requestLogger(s.logger, s.router)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", zap.String("url", fmt.Sprintf("http://localhost:%d", s.port)))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
