package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"libreria-backend/infrastructure/config"
	"libreria-backend/infrastructure/di"
)

// container holds the dependency injection container, built once per
// cold start.
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

// Handler processes product-table stream batches
func Handler(ctx context.Context, event events.DynamoDBEvent) error {
	return container.Tracer.TraceFunction(ctx, "normalize-title", func(ctx context.Context) error {
		return container.TitleNormalizer.HandleStream(ctx, event)
	})
}

func main() {
	lambda.Start(Handler)
}
