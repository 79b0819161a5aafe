package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"jewelshop/internal/domain/lifecycle"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"

	gocloudpubsub "gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // mem:// topics
)

// goCloudPublisher sends events to any topic URL the portable Go CDK understands.
type goCloudPublisher struct {
	topic  *gocloudpubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic behind topicURL
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := gocloudpubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

// PublishOrderEvent sends the event as a JSON body with the event attributes as metadata
func (p *goCloudPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &gocloudpubsub.Message{Body: body, Metadata: event.Attributes()}); err != nil {
		return errors.Wrapf(err, "failed to send %s for order %s", event.Type, event.OrderNumber)
	}

	p.logger.DebugContext(ctx, "[GoCloudPubSub] Event sent",
		slog.String("type", event.Type),
		slog.String("order_number", event.OrderNumber),
	)

	return nil
}

// Close flushes pending messages
func (p *goCloudPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(p.topic.Shutdown(ctx))
}
