package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"libreria-backend/infrastructure/config"
	"libreria-backend/infrastructure/di"
)

var container *di.Container

func init() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// Handler processes product-table stream batches and refreshes the
// denormalized summaries on the join rows.
func Handler(ctx context.Context, event events.DynamoDBEvent) error {
	return container.Tracer.TraceFunction(ctx, "sync-join-rows", func(ctx context.Context) error {
		return container.JoinRowSync.HandleStream(ctx, event)
	})
}

func main() {
	lambda.Start(Handler)
}
