package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogukan2201/ChairUpBackend/internal/api/metrics"
	"github.com/dogukan2201/ChairUpBackend/internal/core/auth"
	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuditSink is where account services drop audit events. The dispatcher
// satisfies it; enqueueing never blocks the request path.
type AuditSink interface {
	Enqueue(event ports.AuditEventInput)
}

// AccountService is the single account implementation shared by all principal
// kinds. The kind parameterizes the collection, the role label, and the kind
// discriminant bound into issued tokens.
type AccountService struct {
	kind     domain.Kind
	repo     ports.AccountRepository
	hasher   auth.Hasher
	tokens   *auth.TokenManager
	throttle LoginThrottle // optional
	audit    AuditSink     // optional
	logger   zerolog.Logger
}

// NewAccountService builds an AccountService for one principal kind.
// throttle and audit may be nil; the service degrades gracefully without them.
func NewAccountService(kind domain.Kind, repo ports.AccountRepository, hasher auth.Hasher, tokens *auth.TokenManager, throttle LoginThrottle, audit AuditSink, logger zerolog.Logger) *AccountService {
	return &AccountService{
		kind:     kind,
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		audit:    audit,
		logger:   logger.With().Str("kind", string(kind)).Logger(),
	}
}

func (s *AccountService) Register(ctx context.Context, in ports.SignupInput) (*domain.Principal, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" || in.PhoneNumber == "" {
		return nil, domain.ErrMissingField
	}

	start := time.Now()
	hash, err := s.hasher.Hash(in.Password)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(string(s.kind), "error").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Principal{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			metrics.SignupsTotal.WithLabelValues(string(s.kind), "conflict").Inc()
			return nil, err
		}
		metrics.SignupsTotal.WithLabelValues(string(s.kind), "error").Inc()
		s.logger.Error().Err(err).Msg("failed to create account")
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(s.kind), "success").Inc()
	s.logger.Info().Str("id", created.ID).Msg("account created")
	s.record(ports.AuditActionSignup, created.ID, created.Email, true)
	return created, nil
}

func (s *AccountService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Principal, string, error) {
	created, err := s.Register(ctx, in)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issue(created)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingField
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			// The throttle is advisory: a Redis outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle check failed")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues(string(s.kind), "throttled").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.failLogin(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues(string(s.kind), "error").Inc()
		return "", nil, err
	}

	if !s.hasher.Verify(password, p.PasswordHash) {
		s.failLogin(ctx, email)
		s.record(ports.AuditActionLogin, p.ID, email, false)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issue(p)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(s.kind), "error").Inc()
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues(string(s.kind), "success").Inc()
	s.record(ports.AuditActionLogin, p.ID, email, true)
	return token, p, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Principal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Principal, error) {
	return s.repo.FindAll(ctx)
}

func (s *AccountService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if in.FirstName != "" {
		p.FirstName = in.FirstName
	}
	if in.LastName != "" {
		p.LastName = in.LastName
	}
	if in.Email != "" {
		p.Email = in.Email
	}
	if in.PhoneNumber != "" {
		p.PhoneNumber = in.PhoneNumber
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return "", err
		}
		p.PasswordHash = hash
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update profile")
		return "", err
	}

	s.record(ports.AuditActionUpdateProfile, p.ID, p.Email, true)
	return s.issue(p)
}

func (s *AccountService) DeleteProfile(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("account deleted")
	s.record(ports.AuditActionDeleteProfile, id, p.Email, true)
	return nil
}

func (s *AccountService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return domain.ErrMissingField
	}

	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	p.PasswordHash = hash
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.record(ports.AuditActionResetPassword, p.ID, email, true)
	return nil
}

func (s *AccountService) issue(p *domain.Principal) (string, error) {
	return s.tokens.Issue(auth.Claims{Kind: s.kind, Subject: p.ID, Email: p.Email})
}

func (s *AccountService) failLogin(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues(string(s.kind), "invalid_credentials").Inc()
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle record failed")
		}
	}
}

func (s *AccountService) record(action, principalID, email string, success bool) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEventInput{
		Action:      action,
		Kind:        s.kind,
		PrincipalID: principalID,
		Email:       email,
		Success:     success,
		Timestamp:   time.Now().UTC(),
	})
}
