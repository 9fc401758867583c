package rabbitmq_consumer

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(batch []amqp.Delivery) []uint64 {
	result := make([]uint64, len(batch))
	for i, d := range batch {
		result[i] = d.DeliveryTag
	}
	return result
}

func TestCollectBatches_FlushesBySize(t *testing.T) {
	msgs := make(chan amqp.Delivery, 5)
	for i := uint64(1); i <= 5; i++ {
		msgs <- amqp.Delivery{DeliveryTag: i}
	}
	close(msgs)

	var batches [][]uint64
	collectBatches(context.Background(), msgs, 2, time.Hour, func(b []amqp.Delivery) {
		batches = append(batches, tags(b))
	})

	assert.Equal(t, [][]uint64{{1, 2}, {3, 4}, {5}}, batches)
}

func TestCollectBatches_FlushesByTimeout(t *testing.T) {
	msgs := make(chan amqp.Delivery)
	ctx, cancel := context.WithCancel(context.Background())
	flushed := make(chan []uint64, 2)

	done := make(chan struct{})
	go func() {
		collectBatches(ctx, msgs, 10, 20*time.Millisecond, func(b []amqp.Delivery) {
			flushed <- tags(b)
		})
		close(done)
	}()

	msgs <- amqp.Delivery{DeliveryTag: 7}
	select {
	case batch := <-flushed:
		assert.Equal(t, []uint64{7}, batch)
	case <-time.After(time.Second):
		t.Fatal("batch was not flushed by timeout")
	}

	cancel()
	<-done
	assert.Empty(t, flushed)
}

func TestCollectBatches_DropsRemainderOnCancel(t *testing.T) {
	msgs := make(chan amqp.Delivery, 1)
	msgs <- amqp.Delivery{DeliveryTag: 3}

	ctx, cancel := context.WithCancel(context.Background())
	var flushCalls int
	done := make(chan struct{})
	go func() {
		collectBatches(ctx, msgs, 10, time.Hour, func(b []amqp.Delivery) { flushCalls++ })
		close(done)
	}()

	// ждем, пока сообщение заберут из канала
	require.Eventually(t, func() bool { return len(msgs) == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Zero(t, flushCalls)
}

func TestConsumerConfigValidate(t *testing.T) {
	valid := ConsumerConfig{QueueName: "q", BatchSize: 10, BatchTimeout: time.Second}
	assert.NoError(t, valid.validate())

	noQueue := valid
	noQueue.QueueName = ""
	assert.Error(t, noQueue.validate())

	noType := valid
	noType.ExchangeName = "listing_events"
	assert.Error(t, noType.validate())

	noBatch := valid
	noBatch.BatchSize = 0
	assert.Error(t, noBatch.validate())
}

func TestNewBatchConsumer_Requirements(t *testing.T) {
	cfg := ConsumerConfig{QueueName: "q", BatchSize: 1, BatchTimeout: time.Second}
	_, err := NewBatchConsumer(cfg, nil, nil)
	assert.Error(t, err)

	_, err = NewBatchConsumer(cfg, func(context.Context, []amqp.Delivery) error { return nil }, nil)
	assert.Error(t, err)
}
