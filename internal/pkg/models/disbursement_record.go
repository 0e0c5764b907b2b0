package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DisbursementRecord is the durable idempotency marker keyed by the
// caller-supplied request id. Once present, any retry of the same request
// is rejected without re-effecting the disbursement.
type DisbursementRecord struct {
	ID            primitive.ObjectID `bson:"_id"`
	RequestID     string             `bson:"requestId"`
	TenantID      string             `bson:"tenantId"`
	ApplicationID primitive.ObjectID `bson:"applicationId"`
	Amount        float64            `bson:"amount"`
	ProcessedAt   time.Time          `bson:"processedAt"`
}
