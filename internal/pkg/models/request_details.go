package models

// RequestDetails is attached to the request context by middleware and
// surfaced in every log line.
type RequestDetails struct {
	RequestID      string                 `json:"request_id"`
	IP             string                 `json:"ip"`
	UserAgent      string                 `json:"user_agent"`
	HTTPMethod     string                 `json:"http_method"`
	Path           string                 `json:"path"`
	TenantID       string                 `json:"tenant_id"`
	OperationName  string                 `json:"operation_name"`
	RequestTime    string                 `json:"request_time"`
	Status         int                    `json:"status"`
	ResponseTime   string                 `json:"response_time"`
	RequestParams  map[string]interface{} `json:"request_params"`
	ResponseParams map[string]interface{} `json:"response_params"`
}
