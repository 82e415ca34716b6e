package ports

import (
	"context"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// SignupInput carries the fields required to create any principal kind.
type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

// UpdateProfileInput carries a partial profile update. Empty string fields
// are left untouched; a nil IsActive leaves the flag as is.
type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	IsActive    *bool
}

// AccountService is the per-kind account surface. One generic implementation
// serves all four kinds, parameterized by the kind descriptor.
type AccountService interface {
	// Register creates the account without issuing a token (used by admins
	// registering café owners on someone else's behalf).
	Register(ctx context.Context, in SignupInput) (*domain.Principal, error)
	// Signup creates the account and issues a token for it.
	Signup(ctx context.Context, in SignupInput) (*domain.Principal, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
	Get(ctx context.Context, id string) (*domain.Principal, error)
	List(ctx context.Context) ([]*domain.Principal, error)
	// UpdateProfile applies a partial update and re-issues a token.
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (string, error)
	DeleteProfile(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}
