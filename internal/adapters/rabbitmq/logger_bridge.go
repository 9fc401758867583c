package rabbitmq

import (
	"listing-service/internal/core/port"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
)

// badKey - поле для значений без строкового ключа, как в log/slog
const badKey = "!BADKEY"

// amqpLogger переводит key-value вызовы rabbitmq_common в LoggerPort
type amqpLogger struct {
	target port.LoggerPort
}

// NewPkgLoggerBridge - логгер для пакетов pkg/rabbitmq с полем component=rabbitmq
func NewPkgLoggerBridge(logger port.LoggerPort) rabbitmq_common.Logger {
	return amqpLogger{target: logger.WithFields(port.Fields{"component": "rabbitmq"})}
}

func kvToFields(kv []interface{}) port.Fields {
	if len(kv) == 0 {
		return nil
	}
	fields := make(port.Fields, (len(kv)+1)/2)
	for len(kv) > 0 {
		key, ok := kv[0].(string)
		if !ok || len(kv) == 1 {
			fields[badKey] = kv[0]
			kv = kv[1:]
			continue
		}
		fields[key] = kv[1]
		kv = kv[2:]
	}
	return fields
}

func (l amqpLogger) Debug(msg string, kv ...interface{}) { l.target.Debug(msg, kvToFields(kv)) }
func (l amqpLogger) Info(msg string, kv ...interface{})  { l.target.Info(msg, kvToFields(kv)) }
func (l amqpLogger) Warn(msg string, kv ...interface{})  { l.target.Warn(msg, kvToFields(kv)) }

func (l amqpLogger) Error(err error, msg string, kv ...interface{}) {
	l.target.Error(msg, err, kvToFields(kv))
}
