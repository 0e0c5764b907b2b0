package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountingEntry is a double-entry bookkeeping record, append-only.
type AccountingEntry struct {
	ID            primitive.ObjectID `bson:"_id"`
	TenantID      string             `bson:"tenantId"`
	ApplicationID primitive.ObjectID `bson:"applicationId"`
	EntryNumber   int                `bson:"entryNumber"`
	Date          time.Time          `bson:"date"`
	DebitAccount  string             `bson:"debitAccount"`
	CreditAccount string             `bson:"creditAccount"`
	Amount        float64            `bson:"amount"`
	Reference     string             `bson:"reference"`
}

// LedgerTransaction is a posting against the loan reference or the
// destination account, append-only.
type LedgerTransaction struct {
	ID        primitive.ObjectID `bson:"_id"`
	TenantID  string             `bson:"tenantId"`
	Type      string             `bson:"type"`
	Reference string             `bson:"reference"`
	AccountID *primitive.ObjectID `bson:"accountId,omitempty"`
	Amount    float64            `bson:"amount"`
	PostedAt  time.Time          `bson:"postedAt"`
}
