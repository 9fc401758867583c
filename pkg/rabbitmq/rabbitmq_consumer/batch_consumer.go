package rabbitmq_consumer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"listing-service/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BatchMessageHandler обрабатывает пачку сообщений.
// Ошибка означает, что вся пачка отклоняется (Nack без requeue, далее DLX очереди, если он задан).
type BatchMessageHandler func(ctx context.Context, deliveries []amqp.Delivery) error

// ConsumerConfig конфигурация потребителя
type ConsumerConfig struct {
	QueueName    string
	DurableQueue bool
	QueueArgs    amqp.Table // например, x-dead-letter-exchange

	// Привязка очереди, пустое имя обменника - без привязки
	ExchangeName string
	ExchangeType string
	RoutingKeys  []string

	ConsumerTag  string
	BatchSize    int
	BatchTimeout time.Duration

	Logger rabbitmq_common.Logger
}

func (c ConsumerConfig) validate() error {
	if c.QueueName == "" {
		return fmt.Errorf("consumer: queue name is required")
	}
	if c.ExchangeName != "" && c.ExchangeType == "" {
		return fmt.Errorf("consumer: exchange type is required when exchange name is set")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("consumer: batch size must be positive")
	}
	if c.BatchTimeout <= 0 {
		return fmt.Errorf("consumer: batch timeout must be positive")
	}
	return nil
}

// BatchConsumer копит сообщения и отдает их обработчику пачками:
// по заполнении пачки или по таймауту с момента первого сообщения.
type BatchConsumer struct {
	config  ConsumerConfig
	handler BatchMessageHandler
	manager *rabbitmq_common.ConnectionManager

	channel *amqp.Channel
	wg      sync.WaitGroup

	Logger rabbitmq_common.Logger
}

func NewBatchConsumer(cfg ConsumerConfig, handler BatchMessageHandler, manager *rabbitmq_common.ConnectionManager) (*BatchConsumer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if handler == nil {
		return nil, fmt.Errorf("consumer: message handler is required")
	}
	if manager == nil {
		return nil, fmt.Errorf("consumer: connection manager is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	return &BatchConsumer{config: cfg, handler: handler, manager: manager, Logger: logger}, nil
}

// setup открывает канал и объявляет очередь, обменник и привязки
func (c *BatchConsumer) setup() (*amqp.Connection, <-chan amqp.Delivery, error) {
	conn, ch, err := c.manager.GetChannel()
	if err != nil {
		return nil, nil, fmt.Errorf("consumer: failed to get channel from manager: %w", err)
	}

	fail := func(format string, err error) (*amqp.Connection, <-chan amqp.Delivery, error) {
		_ = ch.Close()
		return nil, nil, fmt.Errorf(format, err)
	}

	if err := ch.Qos(c.config.BatchSize, 0, false); err != nil {
		return fail("consumer: failed to set QoS: %w", err)
	}

	c.Logger.Debug("Declaring queue", "name", c.config.QueueName, "durable", c.config.DurableQueue)
	if _, err := ch.QueueDeclare(c.config.QueueName, c.config.DurableQueue, false, false, false, c.config.QueueArgs); err != nil {
		return fail("consumer: failed to declare queue: %w", err)
	}

	if c.config.ExchangeName != "" {
		if err := ch.ExchangeDeclare(c.config.ExchangeName, c.config.ExchangeType, true, false, false, false, nil); err != nil {
			return fail("consumer: failed to declare exchange: %w", err)
		}
		for _, key := range c.config.RoutingKeys {
			c.Logger.Debug("Binding queue to exchange", "queue", c.config.QueueName, "exchange", c.config.ExchangeName, "routing_key", key)
			if err := ch.QueueBind(c.config.QueueName, key, c.config.ExchangeName, false, nil); err != nil {
				return fail("consumer: failed to bind queue: %w", err)
			}
		}
	}

	msgs, err := ch.Consume(c.config.QueueName, c.config.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fail("consumer: failed to register a consumer: %w", err)
	}

	c.channel = ch
	return conn, msgs, nil
}

// StartConsuming блокируется до отмены ctx или закрытия соединения
func (c *BatchConsumer) StartConsuming(ctx context.Context) error {
	conn, msgs, err := c.setup()
	if err != nil {
		return err
	}

	c.Logger.Info("Waiting for messages on queue",
		"queue_name", c.config.QueueName,
		"batch_size", c.config.BatchSize,
		"batch_timeout", c.config.BatchTimeout)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		collectBatches(ctx, msgs, c.config.BatchSize, c.config.BatchTimeout, func(batch []amqp.Delivery) {
			c.processBatch(ctx, batch)
		})
	}()

	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	select {
	case <-ctx.Done():
		c.Logger.Info("Context cancelled for consumer, shutting down", "queue_name", c.config.QueueName)
		return nil
	case amqpErr, ok := <-notifyClose:
		if !ok || amqpErr == nil {
			return nil
		}
		c.Logger.Error(amqpErr, "Connection closed for consumer", "queue_name", c.config.QueueName)
		return amqpErr
	}
}

// collectBatches читает msgs до отмены ctx или закрытия канала msgs.
// При отмене ctx неполная пачка не передается: сообщения остаются неподтвержденными,
// и брокер вернет их в очередь после закрытия канала.
func collectBatches(ctx context.Context, msgs <-chan amqp.Delivery, size int, timeout time.Duration, flush func([]amqp.Delivery)) {
	batch := make([]amqp.Delivery, 0, size)
	// с go 1.23 Stop и Reset не требуют вычитывать timer.C
	timer := time.NewTimer(timeout)
	timer.Stop()
	defer timer.Stop()

	emit := func() {
		if len(batch) == 0 {
			return
		}
		flush(batch)
		batch = make([]amqp.Delivery, 0, size)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-msgs:
			if !ok {
				emit()
				return
			}
			if len(batch) == 0 {
				timer.Reset(timeout)
			}
			batch = append(batch, msg)
			if len(batch) >= size {
				timer.Stop()
				emit()
			}

		case <-timer.C:
			emit()
		}
	}
}

func (c *BatchConsumer) processBatch(ctx context.Context, batch []amqp.Delivery) {
	lastTag := batch[len(batch)-1].DeliveryTag

	if err := c.handler(ctx, batch); err != nil {
		c.Logger.Error(err, "Handler returned error for batch, rejecting", "batch_size", len(batch))
		if nackErr := c.channel.Nack(lastTag, true, false); nackErr != nil {
			c.Logger.Error(nackErr, "Failed to Nack batch")
		}
		return
	}

	if err := c.channel.Ack(lastTag, true); err != nil {
		c.Logger.Error(err, "Failed to Ack batch", "batch_size", len(batch))
		return
	}
	c.Logger.Debug("Batch acknowledged", "batch_size", len(batch))
}

// Close дожидается обработки последней пачки и закрывает канал.
// Вызывать после отмены ctx, переданного в StartConsuming.
func (c *BatchConsumer) Close() error {
	c.wg.Wait()
	if c.channel == nil || c.channel.IsClosed() {
		return nil
	}
	if err := c.channel.Close(); err != nil {
		return fmt.Errorf("consumer: failed to close channel: %w", err)
	}
	c.Logger.Info("Consumer closed", "queue_name", c.config.QueueName)
	return nil
}
