package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/events"
)

// Publisher implements ports.EventPublisher using AWS EventBridge
type Publisher struct {
	client       *eventbridge.Client
	eventBusName string
	source       string
	logger       *zap.Logger
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(client *eventbridge.Client, eventBusName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		source:       events.SourceCatalog,
		logger:       logger,
	}
}

// Publish sends a single catalog event to EventBridge
func (p *Publisher) Publish(ctx context.Context, event events.CatalogEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventType(), err)
	}

	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(p.source),
				DetailType:   aws.String(event.EventType()),
				Detail:       aws.String(string(detail)),
				Time:         aws.Time(event.OccurredAt()),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.EventType(), err)
	}
	if out.FailedEntryCount > 0 {
		return fmt.Errorf("event %s rejected by EventBridge", event.EventType())
	}

	p.logger.Debug("Published catalog event",
		zap.String("eventType", event.EventType()),
		zap.String("eventBus", p.eventBusName),
	)
	return nil
}
