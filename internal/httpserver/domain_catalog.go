package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "wardrobe-catalog/internal/catalog/delivery/http"
	catalogUC "wardrobe-catalog/internal/catalog/usecase"
	"wardrobe-catalog/internal/middleware"
)

// setupCatalogDomain initializes the catalog domain and registers its routes.
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := catalogUC.New(srv.catalogRepo, srv.catalogQuery, srv.l)

	// 2. HTTP Handler
	h := catalogHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/catalog/...
	catalogHTTP.RegisterRoutes(api.Group("/catalog"), h, mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
