package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-catalog/internal/middleware"
	"wardrobe-catalog/pkg/response"
)

// ListWardrobe godoc
// @Summary     List wardrobe items
// @Description Filters and sorts the caller's wardrobe. All filters are optional and combined with AND.
// @Tags        Catalog
// @Produce     json
// @Security    BearerAuth
// @Param       category  query string false "Exact category"
// @Param       brand     query string false "Brand substring, case-insensitive"
// @Param       color     query string false "Color substring, case-insensitive"
// @Param       condition query string false "Exact condition (New, LikeNew, Good, Fair, Worn)"
// @Param       lifecycle query string false "Exact lifecycle (Active, Listed, Sold, Donated, Discarded)"
// @Param       search    query string false "Substring of title or description"
// @Param       min_price query int    false "Minimum price in cents, inclusive"
// @Param       max_price query int    false "Maximum price in cents, inclusive"
// @Param       sort_by   query string false "priceCents, listedOn or conditionRank"
// @Param       sort_dir  query string false "asc or desc (default: asc)"
// @Param       sort      query string false "Combined form, e.g. list_price_cents-desc"
// @Param       limit     query int    false "Page size (default: all)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Catalog backend unavailable"
// @Router      /api/v1/catalog/wardrobe [GET]
func (h *handler) ListWardrobe(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListWardrobe(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWardrobe: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// WardrobeFacets godoc
// @Summary     Wardrobe filter options and stats
// @Description Returns distinct brands, categories, colors and conditions plus the stat bar counts.
// @Tags        Catalog
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} facetsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Catalog backend unavailable"
// @Router      /api/v1/catalog/wardrobe/facets [GET]
func (h *handler) WardrobeFacets(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.WardrobeFacets(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.WardrobeFacets: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFacetsResp(output))
}

// InvalidateWardrobe godoc
// @Summary     Drop cached catalog snapshots
// @Description Forces the next wardrobe or marketplace read for this caller to refetch from the backend.
// @Tags        Catalog
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/catalog/wardrobe/cache [DELETE]
func (h *handler) InvalidateWardrobe(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Invalidate(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Invalidate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ListMarketplace godoc
// @Summary     List marketplace listings
// @Description Filters and sorts active resale listings. Takes the same query parameters as the wardrobe list.
// @Tags        Catalog
// @Produce     json
// @Param       category  query string false "Exact category"
// @Param       brand     query string false "Brand substring, case-insensitive"
// @Param       condition query string false "Exact condition"
// @Param       search    query string false "Substring of title or description"
// @Param       min_price query int    false "Minimum price in cents, inclusive"
// @Param       max_price query int    false "Maximum price in cents, inclusive"
// @Param       sort      query string false "e.g. list_price_cents-asc, listed_on-desc, condition_rank-asc"
// @Param       limit     query int    false "Page size"
// @Param       offset    query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Catalog backend unavailable"
// @Router      /api/v1/catalog/marketplace [GET]
func (h *handler) ListMarketplace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListMarketplace(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMarketplace: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Query godoc
// @Summary     Query caller-supplied records
// @Description Runs the catalog filter and sort over the records in the body. Nothing is fetched or stored.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Records, filters and sort"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Too many records"
// @Router      /api/v1/catalog/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Query(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}
