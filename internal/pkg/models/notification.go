package models

// NotificationRequest is the payload handed to the notification sink.
// Delivery is fire-and-forget, failures are logged and never propagated.
type NotificationRequest struct {
	RecipientEmail string            `json:"recipientEmail"`
	RecipientName  string            `json:"recipientName"`
	TemplateKind   string            `json:"templateKind"`
	TemplateData   map[string]string `json:"templateData"`
}
