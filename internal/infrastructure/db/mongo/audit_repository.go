package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

const auditCollection = "auth_events"

// AuditRepository appends auth audit events to an append-only collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Action      string `bson:"action"`
	Kind        string `bson:"kind"`
	PrincipalID string `bson:"principalId,omitempty"`
	Email       string `bson:"email"`
	Success     bool   `bson:"success"`
	Timestamp   int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event ports.AuditEventInput) error {
	doc := auditDoc{
		Action:      event.Action,
		Kind:        string(event.Kind),
		PrincipalID: event.PrincipalID,
		Email:       event.Email,
		Success:     event.Success,
		Timestamp:   event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
