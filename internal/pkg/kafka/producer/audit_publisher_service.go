package producer

import (
	"context"
	"encoding/json"
	"time"

	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

// AuditPublisherInterface is the audit sink the engine writes to.
// Publish failures are surfaced to operational logging only, they never
// fail the operation that triggered them.
type AuditPublisherInterface interface {
	PublishAuditEvent(ctx context.Context, event models.AuditEvent) error
}

type KafkaAuditService struct{}

func NewKafkaAuditService() *KafkaAuditService {
	return &KafkaAuditService{}
}

func (s *KafkaAuditService) PublishAuditEvent(ctx context.Context, event models.AuditEvent) error {

	if KafkaProducer == nil {
		logger.Warn(ctx, "Kafka producer not initialized, dropping audit event %s for %s", event.Action, event.EntityID)
		return nil
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "Failed to marshal audit event: %v", err)
		return err
	}

	if err := KafkaProducer.Produce(ctx, []byte(event.EntityID), payload); err != nil {
		logger.Error(ctx, "Failed to publish audit event %s for %s: %v", event.Action, event.EntityID, err)
		return err
	}

	logger.Debug("Audit event %s published for %s", event.Action, event.EntityID)
	return nil
}
