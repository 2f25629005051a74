package remoteapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс сборщика метрик вызовов удаленного API
// Может быть nil, если метрики выключены
type MetricsCollector interface {
	ObserveGatewayCall(operation, outcome string, duration time.Duration)
}
