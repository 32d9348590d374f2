//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"libreria-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideSQSClient,
	ProvideS3Client,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideMetrics,
	ProvideTracer,
	ProvideProductRepository,
	ProvideCategoryLinkRepository,
	ProvideSearchTokenRepository,
	ProvideObjectStore,
	ProvideCleanupQueue,
	ProvideEventPublisher,
	ProvideSearchEngine,
	ProvideTitleNormalizer,
	ProvideCategoryLinkDenormalizer,
	ProvideJoinRowSync,
	ProvideSearchIndexer,
	ProvideDeleteProductHandler,
	ProvideCleanupWorker,
	ProvideSearchProductsHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
