package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessagePublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// FavoriteEventsPublisher публикует события избранного после проверки по JSON-схеме
type FavoriteEventsPublisher struct {
	producer MessagePublisher
	appID    string
}

func NewFavoriteEventsPublisher(producer MessagePublisher, appID string) (*FavoriteEventsPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &FavoriteEventsPublisher{producer: producer, appID: appID}, nil
}

// eventRoute возвращает ключ маршрутизации и имя контракта для события
func eventRoute(event domain.FavoriteEvent) (routingKey, eventType string) {
	if event.Added {
		return constants.RoutingKeyPropertyFavorited, constants.EventPropertyFavorited
	}
	return constants.RoutingKeyPropertyUnfavorited, constants.EventPropertyUnfavorited
}

func (p *FavoriteEventsPublisher) PublishFavoriteEvent(ctx context.Context, event domain.FavoriteEvent) error {
	routingKey, eventType := eventRoute(event)

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "FavoriteEventsPublisher",
		"routing_key": routingKey,
		"event_type":  eventType,
		"property_id": event.PropertyID,
	})

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}

	body, err := json.Marshal(toFavoriteEventDTO(event))
	if err != nil {
		logger.Error("Failed to marshal event", err, nil)
		return fmt.Errorf("failed to marshal %s: %w", eventType, err)
	}

	if err := contracts.ValidateEvent(eventType, constants.ContractVersionV1, body); err != nil {
		logger.Error("Event failed contract validation", err, nil)
		return fmt.Errorf("invalid %s: %w", eventType, err)
	}

	headers := amqp.Table{"x-contract-version": constants.ContractVersionV1}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		headers["x-trace-id"] = traceID
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID.String(),
		Timestamp:    time.Now().UTC(),
		Type:         eventType,
		AppId:        p.appID,
		Headers:      headers,
		Body:         body,
	}

	if err := p.producer.Publish(ctx, routingKey, msg); err != nil {
		logger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}

	logger.Debug("Event published", port.Fields{"event_id": event.EventID})
	return nil
}
