package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/pkg/catalogquery"
	"wardrobe-catalog/pkg/log"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	ListWardrobe(c *gin.Context)
	WardrobeFacets(c *gin.Context)
	InvalidateWardrobe(c *gin.Context)
	ListMarketplace(c *gin.Context)
	Query(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) *handler {
	registerValidations(l)
	return &handler{
		l:  l,
		uc: uc,
	}
}

var registerOnce sync.Once

// registerValidations adds the catalog_sort and catalog_dir binding tags.
func registerValidations(l log.Logger) {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("catalog_sort", validateSortField); err != nil {
			l.Errorf(context.Background(), "catalog.delivery.http.registerValidations: catalog_sort: %v", err)
		}
		if err := v.RegisterValidation("catalog_dir", validateSortDirection); err != nil {
			l.Errorf(context.Background(), "catalog.delivery.http.registerValidations: catalog_dir: %v", err)
		}
	})
}

func validateSortField(fl validator.FieldLevel) bool {
	_, err := catalogquery.ParseSort(fl.Field().String(), "")
	return err == nil
}

func validateSortDirection(fl validator.FieldLevel) bool {
	_, err := catalogquery.ParseSort(string(catalogquery.SortByPrice), fl.Field().String())
	return err == nil
}
