package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicantSnapshot is the identity/financial/employment data captured at
// intake. Numeric fields default to zero when absent, upstream validation
// owns completeness checks.
type ApplicantSnapshot struct {
	FullName         string  `bson:"fullName"`
	DocumentID       string  `bson:"documentId"`
	Email            string  `bson:"email"`
	Phone            string  `bson:"phone"`
	District         string  `bson:"district"`
	MonthlyIncome    float64 `bson:"monthlyIncome"`
	CurrentDebts     float64 `bson:"currentDebts"`
	YearsEmployed    int     `bson:"yearsEmployed"`
	MonthsEmployed   int     `bson:"monthsEmployed"`
	EmploymentType   string  `bson:"employmentType"`
	HasCreditHistory bool    `bson:"hasCreditHistory"`
	HasBankAccount   bool    `bson:"hasBankAccount"`
}

// TotalMonthsEmployed flattens the tenure snapshot into months.
func (a ApplicantSnapshot) TotalMonthsEmployed() int {
	return a.YearsEmployed*12 + a.MonthsEmployed
}

type RoutingInfo struct {
	BranchID   primitive.ObjectID  `bson:"branchId"`
	AgentID    *primitive.ObjectID `bson:"agentId,omitempty"`
	District   string              `bson:"district"`
	AssignedAt time.Time           `bson:"assignedAt"`
}

type DisbursementDetails struct {
	AccountID   primitive.ObjectID `bson:"accountId"`
	BranchID    primitive.ObjectID `bson:"branchId"`
	Amount      float64            `bson:"amount"`
	ProcessedAt time.Time          `bson:"processedAt"`
}

// LoanApplication is the aggregate root. Once Status is disbursed the
// record is immutable except for payment-tracking child collections.
type LoanApplication struct {
	ID                  primitive.ObjectID   `bson:"_id"`
	TenantID            string               `bson:"tenantId"`
	GUID                string               `bson:"GUID"`
	Applicant           ApplicantSnapshot    `bson:"applicant"`
	LoanAmount          float64              `bson:"loanAmount"`
	TermMonths          int                  `bson:"termMonths"`
	Status              ApplicationStatus    `bson:"status"`
	Routing             *RoutingInfo         `bson:"routing,omitempty"`
	Scoring             *ScoringResult       `bson:"scoring,omitempty"`
	Decision            *Decision            `bson:"decision,omitempty"`
	DisbursementDetails *DisbursementDetails `bson:"disbursementDetails,omitempty"`
	DisbursedAt         *time.Time           `bson:"disbursedAt,omitempty"`
	CreatedAt           time.Time            `bson:"createdAt"`
	UpdatedAt           time.Time            `bson:"updatedAt"`
}
