package http

import (
	"errors"
	"net/http"

	"wardrobe-catalog/internal/catalog"
	pkgErrors "wardrobe-catalog/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, catalog.ErrInvalidPriceRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, catalog.ErrInvalidPriceRange.Error())
	case errors.Is(err, catalog.ErrNegativePrice):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, catalog.ErrNegativePrice.Error())
	case errors.Is(err, catalog.ErrTooManyRecords):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, catalog.ErrTooManyRecords.Error())
	case errors.Is(err, catalog.ErrBackendUnavailable):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
