package models

import "time"

// ScoreBreakdown holds the five sub-scores that feed the weighted total.
type ScoreBreakdown struct {
	IncomeScore         float64 `bson:"incomeScore" json:"incomeScore"`
	DebtScore           float64 `bson:"debtScore" json:"debtScore"`
	TenureScore         float64 `bson:"tenureScore" json:"tenureScore"`
	EmploymentTypeScore float64 `bson:"employmentTypeScore" json:"employmentTypeScore"`
	CreditHistoryScore  float64 `bson:"creditHistoryScore" json:"creditHistoryScore"`
}

// ScoringResult is immutable once written. Recomputation replaces the
// whole value, history lives in the transition log.
type ScoringResult struct {
	Score        int            `bson:"score" json:"score"`
	Band         string         `bson:"band" json:"band"`
	ReasonCodes  []string       `bson:"reasonCodes" json:"reasonCodes"`
	ModelVersion string         `bson:"modelVersion" json:"modelVersion"`
	CalculatedAt time.Time      `bson:"calculatedAt" json:"calculatedAt"`
	Details      ScoreBreakdown `bson:"details" json:"details"`
}
