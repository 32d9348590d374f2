package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	commandhandlers "libreria-backend/application/commands/handlers"
	"libreria-backend/application/pipeline"
	"libreria-backend/application/ports"
	queryhandlers "libreria-backend/application/queries/handlers"
	"libreria-backend/application/workers"
	"libreria-backend/infrastructure/config"
	"libreria-backend/infrastructure/messaging/eventbridge"
	"libreria-backend/infrastructure/messaging/sqs"
	"libreria-backend/infrastructure/persistence/dynamodb"
	"libreria-backend/infrastructure/search"
	"libreria-backend/infrastructure/storage/s3"
	"libreria-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideSQSClient creates an SQS client
func ProvideSQSClient(awsCfg aws.Config) *awssqs.Client {
	return awssqs.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client
func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the pipeline metrics publisher
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("Libreria/%s", cfg.Environment)
	return observability.NewMetrics(client, namespace, cfg.EnableMetrics, logger)
}

// ProvideTracer creates the X-Ray tracer helpers
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer("libreria-catalog", cfg.EnableTracing)
}

// ProvideProductRepository creates the product repository
func ProvideProductRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProductRepository {
	return dynamodb.NewProductRepository(client, cfg.ProductsTable, logger)
}

// ProvideCategoryLinkRepository creates the join-table repository
func ProvideCategoryLinkRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.CategoryLinkRepository {
	return dynamodb.NewCategoryLinkRepository(client, cfg.CategoryLinksTable, cfg.LinksByProductIndex, logger)
}

// ProvideSearchTokenRepository creates the search-token repository
func ProvideSearchTokenRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.SearchTokenRepository {
	return dynamodb.NewSearchTokenRepository(client, cfg.SearchTokensTable, cfg.TokensByProductIndex, logger)
}

// ProvideObjectStore creates the image object store
func ProvideObjectStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) ports.ObjectStore {
	return s3.NewObjectStore(client, cfg.ImagesBucket, logger)
}

// ProvideCleanupQueue creates the cleanup job queue
func ProvideCleanupQueue(client *awssqs.Client, cfg *config.Config, logger *zap.Logger) ports.CleanupQueue {
	return sqs.NewCleanupQueue(client, cfg.CleanupQueueURL, logger)
}

// ProvideEventPublisher creates the catalog event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideSearchEngine creates the full-text engine client, or nil when
// that mode is not configured.
func ProvideSearchEngine(cfg *config.Config, logger *zap.Logger) ports.SearchEngine {
	if !cfg.SearchEnabled() {
		return nil
	}
	return search.NewClient(cfg.SearchEngineURL, cfg.SearchEngineIndex, logger)
}

// ProvideTitleNormalizer creates the title normalizer
func ProvideTitleNormalizer(products ports.ProductRepository, logger *zap.Logger) *pipeline.TitleNormalizer {
	return pipeline.NewTitleNormalizer(products, logger)
}

// ProvideCategoryLinkDenormalizer creates the category-link denormalizer
func ProvideCategoryLinkDenormalizer(
	products ports.ProductRepository,
	links ports.CategoryLinkRepository,
	logger *zap.Logger,
) *pipeline.CategoryLinkDenormalizer {
	return pipeline.NewCategoryLinkDenormalizer(products, links, logger)
}

// ProvideJoinRowSync creates the join-row sync
func ProvideJoinRowSync(
	links ports.CategoryLinkRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *pipeline.JoinRowSync {
	return pipeline.NewJoinRowSync(links, metrics, logger)
}

// ProvideSearchIndexer creates the search indexer
func ProvideSearchIndexer(
	tokens ports.SearchTokenRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *pipeline.SearchIndexer {
	return pipeline.NewSearchIndexer(tokens, metrics, logger)
}

// ProvideDeleteProductHandler creates the deletion request handler
func ProvideDeleteProductHandler(
	products ports.ProductRepository,
	queue ports.CleanupQueue,
	cfg *config.Config,
	logger *zap.Logger,
) *commandhandlers.DeleteProductHandler {
	return commandhandlers.NewDeleteProductHandler(products, queue, cfg.CleanupInitialDelay, logger)
}

// ProvideCleanupWorker creates the cleanup worker
func ProvideCleanupWorker(
	links ports.CategoryLinkRepository,
	store ports.ObjectStore,
	queue ports.CleanupQueue,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *workers.CleanupWorker {
	return workers.NewCleanupWorker(links, store, queue, publisher, metrics, logger)
}

// ProvideSearchProductsHandler creates the search query handler, or nil
// when the engine mode is not configured.
func ProvideSearchProductsHandler(engine ports.SearchEngine, logger *zap.Logger) *queryhandlers.SearchProductsHandler {
	if engine == nil {
		return nil
	}
	return queryhandlers.NewSearchProductsHandler(engine, logger)
}
