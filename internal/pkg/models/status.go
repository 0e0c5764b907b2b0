package models

// ApplicationStatus is the closed set of lifecycle states a loan
// application can be in. Every mutating path consults AllowedTransitions
// instead of comparing raw strings.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReceived  ApplicationStatus = "received"
	StatusRouted    ApplicationStatus = "routed"
	StatusInReview  ApplicationStatus = "in_review"
	StatusDecision  ApplicationStatus = "decision"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
	StatusObserved  ApplicationStatus = "observed"
	StatusDisbursed ApplicationStatus = "disbursed"
)

// AllowedTransitions is the single source of truth for the status graph.
// rejected and disbursed are terminal, they have no outgoing edges.
var AllowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:   {StatusReceived},
	StatusReceived:  {StatusRouted, StatusRejected},
	StatusRouted:    {StatusInReview, StatusRejected},
	StatusInReview:  {StatusDecision, StatusObserved, StatusRejected},
	StatusDecision:  {StatusApproved, StatusRejected, StatusObserved},
	StatusApproved:  {StatusDisbursed},
	StatusObserved:  {StatusInReview},
	StatusRejected:  {},
	StatusDisbursed: {},
}

// CanTransition reports whether from -> to is a legal edge in the graph.
func (from ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s ApplicationStatus) IsTerminal() bool {
	return len(AllowedTransitions[s]) == 0
}

// IsValid reports whether s is a member of the status enumeration.
func (s ApplicationStatus) IsValid() bool {
	_, ok := AllowedTransitions[s]
	return ok
}
