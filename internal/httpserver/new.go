package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	catalogRepo "wardrobe-catalog/internal/catalog/repository"
	catalogUC "wardrobe-catalog/internal/catalog/usecase"
	"wardrobe-catalog/internal/middleware"
	"wardrobe-catalog/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	middleware      middleware.Config
	startedAt       time.Time

	// Catalog domain
	catalogRepo  catalogRepo.Repository
	catalogQuery catalogUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	// Catalog domain
	CatalogRepo  catalogRepo.Repository
	CatalogQuery catalogUC.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		startedAt:       time.Now(),
		catalogRepo:     cfg.CatalogRepo,
		catalogQuery:    cfg.CatalogQuery,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

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
	if srv.catalogRepo == nil {
		return errors.New("catalog repository is required")
	}
	return nil
}
