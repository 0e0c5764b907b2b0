package models

// Handler request bodies. Tenant id travels in the X-Tenant-ID header,
// application id in the path.

type RouteApplicationRequest struct {
	District string `json:"district" binding:"required"`
	UserID   string `json:"userId"`
}

type TransitionRequest struct {
	NewStatus string `json:"newStatus" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	Reason    string `json:"reason"`
}

type ManualDecisionRequest struct {
	Result   string `json:"result" binding:"required"`
	Comments string `json:"comments"`
	UserID   string `json:"userId" binding:"required"`
}

type DisbursementRequest struct {
	RequestID            string `json:"requestId" binding:"required"`
	DestinationAccountID string `json:"destinationAccountId" binding:"required"`
	UserID               string `json:"userId"`
}

type ReassignAgentRequest struct {
	NewAgentID string `json:"newAgentId" binding:"required"`
	UserID     string `json:"userId"`
}
