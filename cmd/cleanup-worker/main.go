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

// Handler consumes cleanup job batches from the queue
func Handler(ctx context.Context, event events.SQSEvent) error {
	return container.Tracer.TraceFunction(ctx, "cleanup-worker", func(ctx context.Context) error {
		return container.CleanupWorker.HandleEvent(ctx, event)
	})
}

func main() {
	lambda.Start(Handler)
}
