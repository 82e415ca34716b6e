package ports

import (
	"context"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// RegisterCafeInput carries a café registration submitted by an admin.
type RegisterCafeInput struct {
	Name        string
	Address     string
	PhoneNumber string
	Location    domain.GeoPoint
	Menu        []domain.MenuItem
	OwnerID     string
}

// RegisterEmployeeInput carries an employee registration submitted by a
// café owner.
type RegisterEmployeeInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	CafeID      string
}

// CafeService manages cafés and their employees. Registration verifies the
// referenced owner (or café) exists before inserting.
type CafeService interface {
	RegisterCafe(ctx context.Context, in RegisterCafeInput) (*domain.Cafe, *domain.Principal, error)
	GetCafe(ctx context.Context, id string) (*domain.Cafe, error)
	ListCafes(ctx context.Context) ([]*domain.Cafe, error)
	DeleteCafe(ctx context.Context, id string) error
	RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*domain.Employee, *domain.Cafe, error)
}
