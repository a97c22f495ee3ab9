package service

import (
	"context"
)

// AnalysisEvent asks the analyzer worker to process a freshly created register.
type AnalysisEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	RegisterID string `json:"register_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnalysisRequested publishes an analysis job for async processing
	PublishAnalysisRequested(ctx context.Context, event *AnalysisEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
