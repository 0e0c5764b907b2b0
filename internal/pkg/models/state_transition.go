package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StateTransition is an append-only log entry, the canonical audit trail
// of the state machine. Never mutated or deleted.
type StateTransition struct {
	ID            primitive.ObjectID `bson:"_id"`
	TenantID      string             `bson:"tenantId"`
	ApplicationID primitive.ObjectID `bson:"applicationId"`
	From          ApplicationStatus  `bson:"from"`
	To            ApplicationStatus  `bson:"to"`
	Timestamp     time.Time          `bson:"timestamp"`
	UserID        string             `bson:"userId"`
	Reason        string             `bson:"reason,omitempty"`
}
