package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-catalog/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Wardrobe routes need the caller's token; the marketplace and ad-hoc query are public.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	wardrobe := rg.Group("/wardrobe", mw.Auth())
	{
		wardrobe.GET("", h.ListWardrobe)
		wardrobe.GET("/facets", h.WardrobeFacets)
		wardrobe.DELETE("/cache", h.InvalidateWardrobe)
	}

	rg.GET("/marketplace", mw.OptionalAuth(), h.ListMarketplace)
	rg.POST("/query", h.Query)
}
