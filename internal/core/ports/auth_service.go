package ports

import (
	"context"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// AuthService handles registration and login. Both return a signed token so
// a freshly registered user is logged in immediately.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
