package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "wardrobe-catalog/pkg/errors"
)

// processListReq binds and validates the catalog view query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

// processQueryReq binds and validates the ad-hoc query body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}
