package ports

import (
	"context"
	"time"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// Audit actions recorded by the account services.
const (
	AuditActionSignup        = "signup"
	AuditActionLogin         = "login"
	AuditActionUpdateProfile = "update_profile"
	AuditActionDeleteProfile = "delete_profile"
	AuditActionResetPassword = "reset_password"
)

// AuditEventInput is the DTO handed to the audit pipeline. Events are written
// asynchronously so the request path never waits on the audit collection.
type AuditEventInput struct {
	Action      string
	Kind        domain.Kind
	PrincipalID string
	Email       string
	Success     bool
	Timestamp   time.Time
}

// AuditService processes audit events dequeued by the dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event AuditEventInput) error
}
