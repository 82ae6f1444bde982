package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

func invokeRBAC(t *testing.T, role string, allowed ...string) (bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set("role", role)
	}

	handlerCalled := false
	next := func(echo.Context) error {
		handlerCalled = true
		return nil
	}

	err := RBAC(allowed...)(next)(c)
	return handlerCalled, err
}

func TestRBACAllowsListedRole(t *testing.T) {
	called, err := invokeRBAC(t, domain.RoleAdmin, domain.RoleAdmin)
	if err != nil || !called {
		t.Fatalf("admin rejected: called=%v err=%v", called, err)
	}
}

func TestRBACForbidsOtherRole(t *testing.T) {
	called, err := invokeRBAC(t, domain.RoleCustomer, domain.RoleAdmin)
	if called {
		t.Error("handler invoked despite forbidden role")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("error = %v, want 403", err)
	}
}

func TestRBACForbidsMissingRole(t *testing.T) {
	called, err := invokeRBAC(t, "", domain.RoleAdmin)
	if called {
		t.Error("handler invoked with no role in context")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("error = %v, want 403", err)
	}
}
