package rabbitmq

import (
	"errors"
	"listing-service/internal/core/port"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEntry struct {
	level  string
	msg    string
	err    error
	fields port.Fields
}

type captureLogger struct {
	entries *[]capturedEntry
	base    port.Fields
}

func newCaptureLogger() (*captureLogger, *[]capturedEntry) {
	entries := &[]capturedEntry{}
	return &captureLogger{entries: entries, base: port.Fields{}}, entries
}

func (l *captureLogger) add(level, msg string, err error, fields port.Fields) {
	merged := port.Fields{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	*l.entries = append(*l.entries, capturedEntry{level: level, msg: msg, err: err, fields: merged})
}

func (l *captureLogger) Info(msg string, fields port.Fields)  { l.add("info", msg, nil, fields) }
func (l *captureLogger) Warn(msg string, fields port.Fields)  { l.add("warn", msg, nil, fields) }
func (l *captureLogger) Debug(msg string, fields port.Fields) { l.add("debug", msg, nil, fields) }
func (l *captureLogger) Error(msg string, err error, fields port.Fields) {
	l.add("error", msg, err, fields)
}

func (l *captureLogger) WithFields(fields port.Fields) port.LoggerPort {
	merged := port.Fields{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &captureLogger{entries: l.entries, base: merged}
}

func TestPkgLoggerBridge(t *testing.T) {
	logger, entries := newCaptureLogger()
	bridge := NewPkgLoggerBridge(logger)

	bridge.Debug("Declaring exchange", "name", "listing_events", "type")
	bridge.Warn("Detected closed connection")
	bridge.Error(errors.New("dial failed"), "Reconnect failed", 42, "attempt", 2)

	require.Len(t, *entries, 3)

	first := (*entries)[0]
	assert.Equal(t, "debug", first.level)
	assert.Equal(t, "listing_events", first.fields["name"])
	assert.Equal(t, "type", first.fields["!BADKEY"])
	assert.Equal(t, "rabbitmq", first.fields["component"])

	assert.Equal(t, "warn", (*entries)[1].level)
	assert.Equal(t, port.Fields{"component": "rabbitmq"}, (*entries)[1].fields)

	last := (*entries)[2]
	assert.Equal(t, "error", last.level)
	assert.EqualError(t, last.err, "dial failed")
	assert.Equal(t, 2, last.fields["attempt"])
	assert.Equal(t, 42, last.fields["!BADKEY"])
}
