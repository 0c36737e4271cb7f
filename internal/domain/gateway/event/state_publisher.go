package event

import (
	"context"

	"weather-info/internal/domain/model"
)

// StatePublisher broadcasts view changes outside the process
type StatePublisher interface {
	// Publish sends the current widget state
	Publish(ctx context.Context, state model.WeatherInfoState) error

	// Health reports whether the publisher can reach its backend
	Health(ctx context.Context) model.ComponentHealthStatus
}

type noopStatePublisher struct{}

// NewNoopStatePublisher returns a publisher that drops every state
func NewNoopStatePublisher() StatePublisher {
	return noopStatePublisher{}
}

func (noopStatePublisher) Publish(context.Context, model.WeatherInfoState) error {
	return nil
}

func (noopStatePublisher) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "publishing disabled"},
	}
}
