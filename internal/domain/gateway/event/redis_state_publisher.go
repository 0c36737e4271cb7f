package event

import (
	"context"

	"weather-info/internal/domain/model"
	"weather-info/pkg/redis"
)

type redisStatePublisher struct {
	client    *redis.Client
	publisher *redis.Publisher
	channel   string
}

// NewRedisStatePublisher publishes every state as JSON on namespace::channel
func NewRedisStatePublisher(client *redis.Client, namespace string, channel string) StatePublisher {
	return &redisStatePublisher{
		client:    client,
		publisher: redis.NewPublisher(client, namespace),
		channel:   channel,
	}
}

func (p *redisStatePublisher) Publish(ctx context.Context, state model.WeatherInfoState) error {
	return p.publisher.PublishJSON(ctx, p.channel, state)
}

func (p *redisStatePublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	check := p.client.HealthCheck(ctx)

	details := check.Details
	details["channel"] = p.publisher.ChannelName(p.channel)

	status := model.StatusDown
	if check.Healthy {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}
