package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	wellnessHTTP "wellness-assistant/internal/wellness/delivery/http"
	"wellness-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowedOrigins  []string
	shutdownTimeout time.Duration

	// Wellness domain
	wellnessHandler wellnessHTTP.Handler
	status          StatusReporter
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	WellnessHandler wellnessHTTP.Handler
	// Status is optional; without it the health routes omit collaborator state.
	Status StatusReporter
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
		wellnessHandler: cfg.WellnessHandler,
		status:          cfg.Status,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.wellnessHandler == nil {
		return errors.New("wellness handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
