// Package events publishes pricing changes for the other omnipos services.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-pricing-service/pkg/broker"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PriceOverrideUpserted = "price_override.upserted"
	PriceOverrideDeleted  = "price_override.deleted"
	PromotionCreated      = "promotion.created"
	PromotionUpdated      = "promotion.updated"
	PromotionToggled      = "promotion.toggled"
	PromotionDeleted      = "promotion.deleted"
	InventoryItemChanged  = "inventory_item.changed"
)

type Event struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	MerchantID string    `json:"merchant_id"`
	EntityID   string    `json:"entity_id"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, eventType, merchantID, entityID string, payload any) error
}

type KafkaPublisher struct {
	producer *broker.KafkaProducer
	logger   logger.ZapLogger
}

func NewKafkaPublisher(producer *broker.KafkaProducer, log logger.ZapLogger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: log}
}

// Publish keys messages by merchant so one merchant's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, merchantID, entityID string, payload any) error {
	data, err := Encode(eventType, merchantID, entityID, payload)
	if err != nil {
		return err
	}
	if err := p.producer.Publish(ctx, merchantID, data); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func Encode(eventType, merchantID, entityID string, payload any) ([]byte, error) {
	return json.Marshal(Event{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		MerchantID: merchantID,
		EntityID:   entityID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	})
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, string, any) error { return nil }
