package models

import "time"

// AuditEvent is the payload published to the audit sink for every
// mutating operation.
type AuditEvent struct {
	Actor         string      `json:"actor"`
	Action        string      `json:"action"`
	EntityType    string      `json:"entityType"`
	EntityID      string      `json:"entityId"`
	TenantID      string      `json:"tenantId"`
	Before        interface{} `json:"before,omitempty"`
	After         interface{} `json:"after,omitempty"`
	CorrelationID string      `json:"correlationId"`
	OccurredAt    time.Time   `json:"occurredAt"`
}
