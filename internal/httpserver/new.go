package httpserver

import (
	"errors"
	"time"

	"logistic-api/pkg/docstore"
	"logistic-api/pkg/log"
	"logistic-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New only wires and validates dependencies; Run serves until the context ends.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	shutdownTimeout time.Duration
	allowedOrigins  []string

	// Storage
	store docstore.Store

	// Auth & security
	jwtMgr scope.Manager
	jwtTTL time.Duration
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Storage
	Store docstore.Store

	// Auth & security
	JWTManager scope.Manager
	JWTTTL     time.Duration
}

// New creates a new HTTPServer instance with the provided configuration.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,

		store: cfg.Store,

		jwtMgr: cfg.JWTManager,
		jwtTTL: cfg.JWTTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	srv.mapHandlers()
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("document store is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	return nil
}
