package contracts

import (
	"listing-service/internal/constants"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "PropertyFavoritedEvent/1.0.0", generateKeyFromPath("events/property-favorited/v1.json"))
	assert.Equal(t, "AddFavoriteRequest/1.0.0", generateKeyFromPath("requests/add-favorite/v1.json"))
	assert.Equal(t, "ListingUpsertedEvent/1.0.0", generateKeyFromPath("events/listing-upserted/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("other/add-favorite/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("events/v1.json"))
}

func TestSchemasAreCompiled(t *testing.T) {
	for _, key := range []string{
		constants.EventPropertyFavorited + "/" + constants.ContractVersionV1,
		constants.EventPropertyUnfavorited + "/" + constants.ContractVersionV1,
		constants.EventListingUpserted + "/" + constants.ContractVersionV1,
		constants.RequestAddFavorite + "/" + constants.ContractVersionV1,
	} {
		require.Contains(t, compiledSchemas, key)
	}
}

func TestValidateRequest_AddFavorite(t *testing.T) {
	tests := []struct {
		body  string
		valid bool
	}{
		{`{"property_id": 1}`, true},
		{`{"property_id": "12"}`, true},
		{`{"property_id": 0}`, false},
		{`{"property_id": "abc"}`, false},
		{`{"property_id": "01"}`, false},
		{`{}`, false},
		{`not json`, false},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			err := ValidateRequest(constants.RequestAddFavorite, constants.ContractVersionV1, []byte(tt.body))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateEvent(t *testing.T) {
	valid := `{
		"event_id": "7f1d3c9e-2b9a-4f5e-8a34-3c1f2b7d9e10",
		"visitor_id": "00000000-0000-0000-0000-000000000000",
		"property_id": 3,
		"occurred_at": "2026-10-19T10:00:00Z"
	}`
	assert.NoError(t, ValidateEvent(constants.EventPropertyFavorited, constants.ContractVersionV1, []byte(valid)))

	missing := `{"event_id": "7f1d3c9e-2b9a-4f5e-8a34-3c1f2b7d9e10", "property_id": 3}`
	assert.Error(t, ValidateEvent(constants.EventPropertyUnfavorited, constants.ContractVersionV1, []byte(missing)))

	assert.Error(t, ValidateEvent("UnknownEvent", constants.ContractVersionV1, []byte(valid)))
}
