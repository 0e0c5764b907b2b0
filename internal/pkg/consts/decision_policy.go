package consts

import "andes/quipu_loan_decisioning/internal/pkg/models"

// AutoDecisionPolicy maps a risk band to the automatic decision outcome.
// Deliberately conservative: no band ever maps to approved, a final
// approval always requires a human decision.
var AutoDecisionPolicy = map[string]models.DecisionResult{
	"A": models.DecisionObserved,
	"B": models.DecisionObserved,
	"C": models.DecisionObserved,
	"D": models.DecisionRejected,
}

// AutoDecisionStatus is the application status the automatic path drives
// to, per band. A and B stay on the decision track awaiting human
// confirmation, C parks in observed, D terminates in rejected.
var AutoDecisionStatus = map[string]models.ApplicationStatus{
	"A": models.StatusDecision,
	"B": models.StatusDecision,
	"C": models.StatusObserved,
	"D": models.StatusRejected,
}

// AutoDecisionComments recorded on the system decision, per band.
var AutoDecisionComments = map[string]string{
	"A": "Pre-approved by scoring (band A), pending human confirmation",
	"B": "Pre-approved by scoring (band B), pending human confirmation",
	"C": "Under observation by scoring (band C), manual review required",
	"D": "Rejected by scoring (band D), score below minimum threshold",
}

// ManualDecisionSources are the statuses a reviewer may decide from.
// The manual path sets the status straight to the verdict instead of
// walking the transition table, so reachability is enforced here.
var ManualDecisionSources = map[models.ApplicationStatus]bool{
	models.StatusInReview: true,
	models.StatusDecision: true,
	models.StatusObserved: true,
}

// DefaultApprovalComment is auto-filled on manual approvals that carry
// no reviewer comment.
const DefaultApprovalComment = "Approved after manual review"

// MinDecisionCommentLength applies to manual rejected/observed decisions.
const MinDecisionCommentLength = 5
