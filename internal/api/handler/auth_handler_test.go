package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// stubAuthService returns scripted responses for Register and Login.
type stubAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func postJSON(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterCreated(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "a@example.com", Role: domain.RoleCustomer}
	h := NewAuthHandler(&stubAuthService{token: "signed-token", user: user})

	c, rec := postJSON(t, `{"email":"a@example.com","password":"hunter22"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q, want signed-token", resp.Token)
	}
	if resp.User == nil || resp.User.ID != "user-1" {
		t.Errorf("user = %+v, want user-1", resp.User)
	}
}

func TestRegisterInvalidJSON(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := postJSON(t, `{not json`)
	err := h.Register(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("error = %v, want 400", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"not-an-email","password":"hunter22"}`},
		{"short password", `{"email":"a@example.com","password":"abc"}`},
		{"unknown role", `{"email":"a@example.com","password":"hunter22","role":"superuser"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := postJSON(t, tc.body)
			err := h.Register(c)

			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("error = %v, want 422", err)
			}
		})
	}
}

func TestRegisterConflictPassthrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})

	c, _ := postJSON(t, `{"email":"a@example.com","password":"hunter22"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("error = %v, want ErrUserExists for the error handler to map", err)
	}
}

func TestLoginOK(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "a@example.com", Role: domain.RoleCustomer}
	h := NewAuthHandler(&stubAuthService{token: "signed-token", user: user})

	c, rec := postJSON(t, `{"email":"a@example.com","password":"hunter22"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q, want signed-token", resp.Token)
	}
}

func TestLoginInvalidCredentialsPassthrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := postJSON(t, `{"email":"a@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials for the error handler to map", err)
	}
}
