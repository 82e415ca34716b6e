package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

type stubAuditRepo struct {
	inserted []ports.AuditEventInput
	err      error
}

func (r *stubAuditRepo) Insert(_ context.Context, event ports.AuditEventInput) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := ports.AuditEventInput{
		Action:      ports.AuditActionLogin,
		Kind:        domain.KindAdmin,
		PrincipalID: "id-1",
		Email:       "a@x.com",
		Success:     true,
		Timestamp:   time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one inserted event, got %d", len(repo.inserted))
	}
	if repo.inserted[0].Action != ports.AuditActionLogin {
		t.Fatalf("unexpected action %q", repo.inserted[0].Action)
	}
}

func TestAuditService_Process_RepoError(t *testing.T) {
	wantErr := errors.New("write failed")
	svc := NewAuditService(&stubAuditRepo{err: wantErr}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.AuditEventInput{Action: ports.AuditActionSignup})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}
