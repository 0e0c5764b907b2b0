package notification

import (
	"context"
	"encoding/json"

	"andes/quipu_loan_decisioning/configs"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/pubsub"
)

// NotificationServiceInterface delivers applicant notifications.
type NotificationServiceInterface interface {
	NotifyApplicant(ctx context.Context, notification models.NotificationRequest) error
}

type NotificationService struct {
	publisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(publisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{publisher: publisher}
}

// NotifyApplicant publishes a notification message to the applicant topic.
// Callers treat delivery as best-effort, a returned error is logged by the
// caller and never fails the business operation.
func (s *NotificationService) NotifyApplicant(ctx context.Context, notification models.NotificationRequest) error {
	if s.publisher == nil {
		logger.Warn(ctx, "PubSub publisher not initialized, skipping notification %s for %s",
			notification.TemplateKind, notification.RecipientEmail)
		return nil
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		logger.Error(ctx, "Failed to marshal notification payload: %v", err)
		return err
	}

	attributes := map[string]string{
		"templateKind": notification.TemplateKind,
	}

	messageID, err := s.publisher.Publish(ctx, configs.PUBSUB_TOPIC, payload, attributes)
	if err != nil {
		logger.Error(ctx, "Failed to publish notification %s for %s: %v",
			notification.TemplateKind, notification.RecipientEmail, err)
		return err
	}

	logger.Debug("Notification %s published for %s with message ID %s",
		notification.TemplateKind, notification.RecipientEmail, messageID)
	return nil
}
