package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wardrobe-catalog/internal/middleware"
	"wardrobe-catalog/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", mw.RateLimit())

	if err := srv.setupCatalogDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
