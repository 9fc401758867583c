package rabbitmq

import (
	"context"
	"errors"
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIngestUseCase struct {
	calls [][]domain.Property
	err   error
}

func (f *fakeIngestUseCase) Execute(_ context.Context, props []domain.Property) (int64, error) {
	f.calls = append(f.calls, props)
	return int64(len(props)), f.err
}

const validListingBody = `{
	"id": 101,
	"title": "역세권 오피스텔",
	"type": "오피스텔",
	"transaction_type": "monthly",
	"deposit": 10000000,
	"monthly_rent": 650000,
	"price": null,
	"area": {"exclusive": 23.1, "supply": 45.2},
	"floor": "7/15",
	"direction": "남향",
	"has_elevator": true,
	"maintenance_fee": 80000,
	"latitude": 37.5,
	"longitude": 127.03
}`

func delivery(tag uint64, body string) amqp.Delivery {
	return amqp.Delivery{
		DeliveryTag: tag,
		Type:        constants.EventListingUpserted,
		Headers:     amqp.Table{"x-contract-version": constants.ContractVersionV1},
		Body:        []byte(body),
	}
}

func TestDecodeListing(t *testing.T) {
	prop, err := decodeListing(delivery(1, validListingBody))
	require.NoError(t, err)

	assert.Equal(t, int64(101), prop.ID)
	assert.Equal(t, domain.TransactionMonthly, prop.TransactionType)
	assert.Nil(t, prop.Price)
	require.NotNil(t, prop.MonthlyRent)
	assert.Equal(t, int64(650000), *prop.MonthlyRent)
	assert.InDelta(t, 23.1, prop.Area.Exclusive, 1e-9)
	require.NotNil(t, prop.MaintenanceFee)
	assert.Nil(t, prop.Rooms)
}

func TestDecodeListing_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		d    amqp.Delivery
	}{
		{"not json", delivery(1, `{`)},
		{"unknown transaction", delivery(1, `{"id":1,"title":"x","type":"빌라","transaction_type":"rent","area":{"exclusive":1,"supply":1}}`)},
		{"missing area", delivery(1, `{"id":1,"title":"x","type":"빌라","transaction_type":"sale"}`)},
		{"wrong event type", amqp.Delivery{Type: "PropertyFavoritedEvent", Body: []byte(validListingBody)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeListing(tc.d)
			assert.Error(t, err)
		})
	}
}

func TestHandleBatch_SkipsMalformed(t *testing.T) {
	uc := &fakeIngestUseCase{}
	logger, entries := newCaptureLogger()
	adapter := newListingIngestConsumer(uc, logger)

	err := adapter.handleBatch(context.Background(), []amqp.Delivery{
		delivery(1, validListingBody),
		delivery(2, `{"id":0}`),
	})
	require.NoError(t, err)

	require.Len(t, uc.calls, 1)
	require.Len(t, uc.calls[0], 1)
	assert.Equal(t, int64(101), uc.calls[0][0].ID)

	var warned bool
	for _, e := range *entries {
		if e.level == "warn" && e.fields["delivery_tag"] == uint64(2) {
			warned = true
			assert.Equal(t, "ListingIngestConsumer", e.fields["component"])
		}
	}
	assert.True(t, warned)
}

func TestHandleBatch_AllMalformedIsAcked(t *testing.T) {
	uc := &fakeIngestUseCase{}
	logger, _ := newCaptureLogger()
	adapter := newListingIngestConsumer(uc, logger)

	err := adapter.handleBatch(context.Background(), []amqp.Delivery{delivery(1, `[]`)})
	assert.NoError(t, err)
	assert.Empty(t, uc.calls)
}

func TestHandleBatch_UseCaseErrorRejectsBatch(t *testing.T) {
	uc := &fakeIngestUseCase{err: errors.New("copy failed")}
	logger, _ := newCaptureLogger()
	adapter := newListingIngestConsumer(uc, logger)

	err := adapter.handleBatch(context.Background(), []amqp.Delivery{delivery(1, validListingBody)})
	assert.Error(t, err)
}
