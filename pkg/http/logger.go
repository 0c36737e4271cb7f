package http

import (
	"go.uber.org/zap"

	"weather-info/pkg/log"
	"weather-info/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}
func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes request and response lines through the application logger.
type ZapLogger struct{}

// NewZapLogger returns an HTTPLogger backed by pkg/log.
func NewZapLogger() *ZapLogger {
	return &ZapLogger{}
}

func (ZapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug(msg.GetMessage("weather.fetch-request", method, url),
		zap.String("method", method),
		zap.String("url", url))
}

func (ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debug(msg.GetMessage("weather.fetch-success", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error) {
	log.Warn(msg.GetMessage("weather.fetch-fail", method, url, httpStatus, latency, err),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
