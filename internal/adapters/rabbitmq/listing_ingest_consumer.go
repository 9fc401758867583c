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
	"listing-service/internal/core/port/usecases_port"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_consumer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageConsumer - то, что адаптеру нужно от rabbitmq_consumer.BatchConsumer
type MessageConsumer interface {
	StartConsuming(ctx context.Context) error
	Close() error
}

// ListingIngestConsumer слушает очередь событий ListingUpsertedEvent
// и сохраняет объявления пачками.
type ListingIngestConsumer struct {
	consumer MessageConsumer
	useCase  usecases_port.IngestListingsUseCase
	logger   port.LoggerPort
}

// NewListingIngestConsumer создает адаптер и BatchConsumer с обработчиком handleBatch
func NewListingIngestConsumer(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	manager *rabbitmq_common.ConnectionManager,
	useCase usecases_port.IngestListingsUseCase,
	logger port.LoggerPort,
) (*ListingIngestConsumer, error) {
	adapter := newListingIngestConsumer(useCase, logger)

	consumer, err := rabbitmq_consumer.NewBatchConsumer(consumerCfg, adapter.handleBatch, manager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for listings: %w", err)
	}
	adapter.consumer = consumer

	return adapter, nil
}

func newListingIngestConsumer(useCase usecases_port.IngestListingsUseCase, logger port.LoggerPort) *ListingIngestConsumer {
	return &ListingIngestConsumer{
		useCase: useCase,
		logger:  logger.WithFields(port.Fields{"component": "ListingIngestConsumer"}),
	}
}

// handleBatch разбирает пачку и передает ее в use case.
// Сообщения, не прошедшие проверку контракта, пропускаются и подтверждаются вместе с пачкой.
// Ошибка use case отклоняет всю пачку.
func (a *ListingIngestConsumer) handleBatch(ctx context.Context, deliveries []amqp.Delivery) error {
	a.logger.Debug("Received batch", port.Fields{"batch_size": len(deliveries)})

	props := make([]domain.Property, 0, len(deliveries))
	for _, d := range deliveries {
		prop, err := decodeListing(d)
		if err != nil {
			a.logger.Warn("Skipping malformed listing message", port.Fields{
				"delivery_tag": d.DeliveryTag,
				"message_id":   d.MessageId,
				"error":        err.Error(),
			})
			continue
		}
		props = append(props, prop)
	}

	if len(props) == 0 {
		a.logger.Info("No valid listings in batch", port.Fields{"batch_size": len(deliveries)})
		return nil
	}

	ctx = contextkeys.ContextWithLogger(ctx, a.logger)
	affected, err := a.useCase.Execute(ctx, props)
	if err != nil {
		return fmt.Errorf("failed to ingest listings batch: %w", err)
	}

	a.logger.Info("Listings batch ingested", port.Fields{
		"batch_size": len(deliveries),
		"decoded":    len(props),
		"affected":   affected,
	})
	return nil
}

// decodeListing проверяет сообщение по схеме и переводит его в доменную модель.
// Тип и версия берутся из заголовков, при их отсутствии - значения по умолчанию.
func decodeListing(d amqp.Delivery) (domain.Property, error) {
	eventType, _ := d.Headers["event-type"].(string)
	if eventType == "" {
		eventType = d.Type
	}
	if eventType == "" {
		eventType = constants.EventListingUpserted
	}
	eventVersion, _ := d.Headers["x-contract-version"].(string)
	if eventVersion == "" {
		eventVersion = constants.ContractVersionV1
	}

	if eventType != constants.EventListingUpserted {
		return domain.Property{}, fmt.Errorf("unexpected event type %q", eventType)
	}

	if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
		return domain.Property{}, err
	}

	var dto ListingUpsertedDTO
	if err := json.Unmarshal(d.Body, &dto); err != nil {
		return domain.Property{}, fmt.Errorf("failed to unmarshal listing event: %w", err)
	}
	return dto.toDomain(), nil
}

// Start блокируется до отмены ctx
func (a *ListingIngestConsumer) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

func (a *ListingIngestConsumer) Close() error {
	return a.consumer.Close()
}
