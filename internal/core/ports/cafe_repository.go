package ports

import (
	"context"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// CafeRepository defines persistence operations for cafés.
type CafeRepository interface {
	Create(ctx context.Context, cafe *domain.Cafe) (*domain.Cafe, error)
	FindByID(ctx context.Context, id string) (*domain.Cafe, error)
	FindAll(ctx context.Context) ([]*domain.Cafe, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeRepository defines persistence operations for café employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
}
