package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dogukan2201/ChairUpBackend/internal/core/auth"
	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

type stubAccountRepo struct {
	byID   map[string]*domain.Principal
	nextID int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[string]*domain.Principal)}
}

func clonePrincipal(p *domain.Principal) *domain.Principal {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, p *domain.Principal) (*domain.Principal, error) {
	for _, existing := range r.byID {
		if existing.Email == p.Email || existing.PhoneNumber == p.PhoneNumber {
			return nil, domain.ErrAlreadyExists
		}
	}
	r.nextID++
	copy := clonePrincipal(p)
	copy.ID = "id-" + strconv.Itoa(r.nextID)
	r.byID[copy.ID] = clonePrincipal(copy)
	return copy, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Principal, error) {
	for _, p := range r.byID {
		if p.Email == email {
			return clonePrincipal(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Principal, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clonePrincipal(p), nil
}

func (r *stubAccountRepo) FindAll(_ context.Context) ([]*domain.Principal, error) {
	out := make([]*domain.Principal, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, clonePrincipal(p))
	}
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, p *domain.Principal) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[p.ID] = clonePrincipal(p)
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) TooManyFailures(_ context.Context, _ string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, _ string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

type stubAuditSink struct {
	events []ports.AuditEventInput
}

func (s *stubAuditSink) Enqueue(event ports.AuditEventInput) {
	s.events = append(s.events, event)
}

func newTestService(kind domain.Kind, repo ports.AccountRepository, throttle LoginThrottle, audit AuditSink) *AccountService {
	hasher := auth.NewHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager("secret", time.Hour)
	return NewAccountService(kind, repo, hasher, tokens, throttle, audit, zerolog.Nop())
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "5550001",
		Password:    "p1",
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestService(domain.KindCustomer, repo, nil, nil)

	created, token, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.PasswordHash == "p1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("p1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !created.IsActive {
		t.Fatalf("expected new account to be active")
	}

	claims, err := auth.NewTokenManager("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Kind != domain.KindCustomer {
		t.Fatalf("expected kind customer, got %q", claims.Kind)
	}
	if claims.Subject != created.ID {
		t.Fatalf("expected subject %q, got %q", created.ID, claims.Subject)
	}
}

func TestAccountService_Signup_MissingField(t *testing.T) {
	svc := newTestService(domain.KindCustomer, newStubAccountRepo(), nil, nil)

	in := validSignup()
	in.Email = ""
	if _, _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestAccountService_Signup_Duplicate(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestService(domain.KindCustomer, repo, nil, nil)

	if _, _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	in := validSignup()
	in.PhoneNumber = "5550002" // same email, different phone
	if _, _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	throttle := &stubThrottle{}
	audit := &stubAuditSink{}
	svc := newTestService(domain.KindAdmin, repo, throttle, audit)

	created, _, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, p, err := svc.Login(context.Background(), "ada@example.com", "p1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if p.ID != created.ID {
		t.Fatalf("expected principal %q, got %q", created.ID, p.ID)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}

	var loginEvents int
	for _, e := range audit.events {
		if e.Action == ports.AuditActionLogin && e.Success {
			loginEvents++
		}
	}
	if loginEvents != 1 {
		t.Fatalf("expected one successful login audit event, got %d", loginEvents)
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	throttle := &stubThrottle{}
	svc := newTestService(domain.KindAdmin, repo, throttle, nil)

	_, _, _ = svc.Signup(context.Background(), validSignup())
	if _, _, err := svc.Login(context.Background(), "ada@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", throttle.failures)
	}
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	svc := newTestService(domain.KindAdmin, newStubAccountRepo(), nil, nil)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "p1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Login_Throttled(t *testing.T) {
	svc := newTestService(domain.KindAdmin, newStubAccountRepo(), &stubThrottle{blocked: true}, nil)

	if _, _, err := svc.Login(context.Background(), "ada@example.com", "p1"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAccountService_UpdateProfile_ReissuesToken(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestService(domain.KindCafeOwner, repo, nil, nil)

	created, firstToken, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	time.Sleep(1100 * time.Millisecond) // new iat so the re-issued token differs
	token, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{
		FirstName: "Augusta",
		Password:  "p2",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if token == firstToken {
		t.Fatalf("expected a re-issued token")
	}

	updated, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if updated.FirstName != "Augusta" {
		t.Fatalf("first name not updated: %q", updated.FirstName)
	}
	if updated.LastName != "Lovelace" {
		t.Fatalf("untouched field changed: %q", updated.LastName)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("p2")) != nil {
		t.Fatalf("password not re-hashed")
	}

	if _, _, err := svc.Login(context.Background(), "ada@example.com", "p1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
}

func TestAccountService_UpdateProfile_NotFound(t *testing.T) {
	svc := newTestService(domain.KindCafeOwner, newStubAccountRepo(), nil, nil)

	if _, err := svc.UpdateProfile(context.Background(), "missing", ports.UpdateProfileInput{FirstName: "X"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountService_DeleteProfile(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestService(domain.KindUser, repo, nil, nil)

	created, _, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if err := svc.DeleteProfile(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteProfile(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestAccountService_ResetPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestService(domain.KindUser, repo, nil, nil)

	_, _, _ = svc.Signup(context.Background(), validSignup())
	if err := svc.ResetPassword(context.Background(), "ada@example.com", "newpass"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ada@example.com", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), "ghost@example.com", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}
