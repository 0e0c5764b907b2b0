package models

import "time"

// DecisionResult is the closed set of decision outcomes.
type DecisionResult string

const (
	DecisionApproved DecisionResult = "approved"
	DecisionRejected DecisionResult = "rejected"
	DecisionObserved DecisionResult = "observed"
	DecisionPending  DecisionResult = "pending"
)

func (r DecisionResult) IsValid() bool {
	switch r {
	case DecisionApproved, DecisionRejected, DecisionObserved, DecisionPending:
		return true
	}
	return false
}

// SystemUser is the actor recorded on automatic decisions.
const SystemUser = "SYSTEM"

// Decision is attached once per scoring/review cycle. A manual decision
// overwrites the automatic one and rewrites the application status.
type Decision struct {
	Result      DecisionResult `bson:"result" json:"result"`
	DecidedBy   string         `bson:"decidedBy" json:"decidedBy"`
	DecidedAt   time.Time      `bson:"decidedAt" json:"decidedAt"`
	Comments    string         `bson:"comments" json:"comments"`
	IsAutomatic bool           `bson:"isAutomatic" json:"isAutomatic"`
}
