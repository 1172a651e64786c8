package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "wardrobe-catalog/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "conflict")
	if err.Error() != "conflict" || err.StatusCode != http.StatusConflict || err.Code != http.StatusConflict {
		t.Errorf("unexpected error: %+v", err)
	}

	coded := err.WithCode(40901)
	if coded.Code != 40901 || coded.StatusCode != http.StatusConflict {
		t.Errorf("unexpected coded error: %+v", coded)
	}
	if err.Code != http.StatusConflict {
		t.Errorf("WithCode must not modify the receiver")
	}
}

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.ErrBadGateway)
	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok || he.StatusCode != http.StatusBadGateway {
		t.Errorf("expected bad gateway, got %v %v", he, ok)
	}

	if _, ok := pkgErrors.AsHTTPError(errors.New("plain")); ok {
		t.Errorf("plain errors are not HTTP errors")
	}

	v := pkgErrors.NewValidationError(errors.New("limit must be >= 0"))
	if v.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", v.StatusCode)
	}
}
