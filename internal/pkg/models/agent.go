package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Agent is a loan officer at a branch. CurrentLoanCount is an advisory
// capacity counter, not a hard lock.
type Agent struct {
	ID                 primitive.ObjectID `bson:"_id"`
	TenantID           string             `bson:"tenantId"`
	BranchID           primitive.ObjectID `bson:"branchId"`
	FullName           string             `bson:"fullName"`
	MaxConcurrentLoans int                `bson:"maxConcurrentLoans"`
	CurrentLoanCount   int                `bson:"currentLoanCount"`
	IsActive           bool               `bson:"isActive"`
}
