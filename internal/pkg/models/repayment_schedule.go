package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RepaymentScheduleEntry is one installment of the amortization schedule.
// Entries are created once at disbursement and never rewritten, payment
// progress is tracked by the Paid/PaidAt fields only.
type RepaymentScheduleEntry struct {
	ID                primitive.ObjectID `bson:"_id"`
	TenantID          string             `bson:"tenantId"`
	ApplicationID     primitive.ObjectID `bson:"applicationId"`
	InstallmentNumber int                `bson:"installmentNumber"`
	DueDate           time.Time          `bson:"dueDate"`
	Principal         float64            `bson:"principal"`
	Interest          float64            `bson:"interest"`
	TotalPayment      float64            `bson:"totalPayment"`
	RemainingBalance  float64            `bson:"remainingBalance"`
	Paid              bool               `bson:"paid"`
	PaidAt            *time.Time         `bson:"paidAt,omitempty"`
}
