package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body
}

func TestErrorHandlerDomainErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "invalid token"},
		{domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{domain.ErrVariantNotFound, http.StatusNotFound, "variant not found"},
		{domain.ErrCategoryExists, http.StatusConflict, "category already exists"},
		{domain.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{domain.ErrDuplicateSKU, http.StatusUnprocessableEntity, "duplicate variant sku"},
	}
	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
			if body.Error != tc.wantMsg {
				t.Errorf("message = %q, want %q", body.Error, tc.wantMsg)
			}
		})
	}
}

func TestErrorHandlerWrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("%w (from pending to delivered)", domain.ErrInvalidTransition)

	code, body := renderError(t, wrapped)
	if code != http.StatusUnprocessableEntity {
		t.Errorf("code = %d, want 422", code)
	}
	if body.Error != wrapped.Error() {
		t.Errorf("message = %q, want full transition detail", body.Error)
	}
}

func TestErrorHandlerEchoErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if body.Error != "invalid payload" {
		t.Errorf("message = %q", body.Error)
	}
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	code, body := renderError(t, errors.New("connection refused: 10.0.0.7:27017"))
	if code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", code)
	}
	if body.Error != "internal server error" {
		t.Errorf("message = %q, internal detail must not leak", body.Error)
	}
}
