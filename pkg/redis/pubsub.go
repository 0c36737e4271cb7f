package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher handles Redis publishing operations
type Publisher struct {
	client    *Client
	namespace string
}

// NewPublisher creates a publisher whose channels are prefixed with namespace
func NewPublisher(client *Client, namespace string) *Publisher {
	return &Publisher{
		client:    client,
		namespace: namespace,
	}
}

// ChannelName constructs the full channel name using namespace::channel format
func (p *Publisher) ChannelName(channel string) string {
	if p.namespace != "" {
		return p.namespace + "::" + channel
	}
	return channel
}

// PublishJSON publishes message as JSON to channel and keeps it as the
// channel's last value so late readers can fetch it.
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) error {
	fullChannel := p.ChannelName(channel)
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}

	pipe := p.client.GetClient().TxPipeline()
	pipe.Publish(ctx, fullChannel, jsonData)
	pipe.Set(ctx, fullChannel+"::last", jsonData, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", fullChannel, err)
	}
	return nil
}
