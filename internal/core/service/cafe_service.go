package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogukan2201/ChairUpBackend/internal/core/auth"
	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

// CafeService manages cafés and employees. Referential checks run before any
// insert: a café must point at an existing owner, an employee at an existing
// café.
type CafeService struct {
	cafes     ports.CafeRepository
	employees ports.EmployeeRepository
	owners    ports.AccountRepository
	hasher    auth.Hasher
	logger    zerolog.Logger
}

func NewCafeService(cafes ports.CafeRepository, employees ports.EmployeeRepository, owners ports.AccountRepository, hasher auth.Hasher, logger zerolog.Logger) *CafeService {
	return &CafeService{
		cafes:     cafes,
		employees: employees,
		owners:    owners,
		hasher:    hasher,
		logger:    logger,
	}
}

func (s *CafeService) RegisterCafe(ctx context.Context, in ports.RegisterCafeInput) (*domain.Cafe, *domain.Principal, error) {
	if in.Name == "" || in.Address == "" || in.PhoneNumber == "" || in.OwnerID == "" || len(in.Location.Coordinates) == 0 {
		return nil, nil, domain.ErrMissingField
	}

	owner, err := s.owners.FindByID(ctx, in.OwnerID)
	if err != nil {
		// Only a genuine miss becomes the 401; an infrastructure failure
		// must surface as a server error.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrOwnerNotFound
		}
		return nil, nil, err
	}

	location := in.Location
	if location.Type == "" {
		location.Type = "Point"
	}

	now := time.Now().UTC()
	cafe, err := s.cafes.Create(ctx, &domain.Cafe{
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Location:    location,
		Menu:        in.Menu,
		OwnerID:     owner.ID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to register cafe")
		return nil, nil, err
	}

	s.logger.Info().Str("cafe_id", cafe.ID).Str("owner_id", owner.ID).Msg("cafe registered")
	return cafe, owner, nil
}

func (s *CafeService) GetCafe(ctx context.Context, id string) (*domain.Cafe, error) {
	return s.cafes.FindByID(ctx, id)
}

func (s *CafeService) ListCafes(ctx context.Context) ([]*domain.Cafe, error) {
	return s.cafes.FindAll(ctx)
}

func (s *CafeService) DeleteCafe(ctx context.Context, id string) error {
	if _, err := s.cafes.FindByID(ctx, id); err != nil {
		return err
	}
	return s.cafes.Delete(ctx, id)
}

func (s *CafeService) RegisterEmployee(ctx context.Context, in ports.RegisterEmployeeInput) (*domain.Employee, *domain.Cafe, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" || in.PhoneNumber == "" || in.CafeID == "" {
		return nil, nil, domain.ErrMissingField
	}

	cafe, err := s.cafes.FindByID(ctx, in.CafeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrCafeNotFound
		}
		return nil, nil, err
	}

	// The original stored employee passwords verbatim; they go through the
	// same hasher as every other credential here.
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	employee, err := s.employees.Create(ctx, &domain.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
		CafeID:       cafe.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to register employee")
		return nil, nil, err
	}

	s.logger.Info().Str("employee_id", employee.ID).Str("cafe_id", cafe.ID).Msg("employee registered")
	return employee, cafe, nil
}
