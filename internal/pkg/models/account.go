package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AccountStatusActive = "active"
	AccountStatusFrozen = "frozen"
	AccountStatusClosed = "closed"
)

// Account is the destination for disbursed principal.
type Account struct {
	ID                  primitive.ObjectID `bson:"_id"`
	TenantID            string             `bson:"tenantId"`
	ApplicantDocumentID string             `bson:"applicantDocumentId"`
	Status              string             `bson:"status"`
	Balance             float64            `bson:"balance"`
	UpdatedAt           time.Time          `bson:"updatedAt"`
}
