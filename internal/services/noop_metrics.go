package services

import "time"

// NoopMetrics discards every observation. Prometheus collectors register
// globally, so tests and throwaway wiring use this instead of the real
// recorder.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (NoopMetrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {}
func (NoopMetrics) RecordTransactionMutation(operation, status string)                    {}
func (NoopMetrics) RecordRecommendationRequest(status string, duration time.Duration)     {}
func (NoopMetrics) RecordAuthEvent(event, status string)                                  {}
func (NoopMetrics) RecordError(code string)                                               {}
