package fluentlogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{Host: "127.0.0.1", Port: 24224})
	assert.ErrorContains(t, err, "tag prefix")

	_, err = NewClient(Config{TagPrefix: "listing-service"})
	assert.ErrorContains(t, err, "host")
}
