package ports

import (
	"context"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// AccountRepository defines persistence for one principal kind's collection.
// Uniqueness of email and phone number is enforced by the store's unique
// indexes; Create surfaces a violation as domain.ErrAlreadyExists.
type AccountRepository interface {
	Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	FindByID(ctx context.Context, id string) (*domain.Principal, error)
	FindAll(ctx context.Context) ([]*domain.Principal, error)
	Update(ctx context.Context, p *domain.Principal) error
	Delete(ctx context.Context, id string) error
}
