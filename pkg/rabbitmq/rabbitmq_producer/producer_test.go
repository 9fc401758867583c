package rabbitmq_producer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisherConfigValidate(t *testing.T) {
	assert.NoError(t, PublisherConfig{}.validate())
	assert.NoError(t, PublisherConfig{DeclareExchangeIfMissing: true, ExchangeName: "listing_events", ExchangeType: "direct"}.validate())
	assert.Error(t, PublisherConfig{DeclareExchangeIfMissing: true, ExchangeType: "direct"}.validate())
	assert.Error(t, PublisherConfig{DeclareExchangeIfMissing: true, ExchangeName: "listing_events"}.validate())
}

func TestNewPublisher_RequiresManager(t *testing.T) {
	_, err := NewPublisher(PublisherConfig{}, nil)
	assert.Error(t, err)
}
