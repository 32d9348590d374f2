package di

import (
	"go.uber.org/zap"

	commandhandlers "libreria-backend/application/commands/handlers"
	"libreria-backend/application/pipeline"
	"libreria-backend/application/ports"
	queryhandlers "libreria-backend/application/queries/handlers"
	"libreria-backend/application/workers"
	"libreria-backend/infrastructure/config"
	"libreria-backend/pkg/observability"
)

// Container holds all application dependencies. Every cmd entrypoint
// builds exactly one container at cold start and pulls its handler out of
// it; nothing in the pipeline reaches for an ambient client.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *observability.Metrics
	Tracer  *observability.Tracer

	Products ports.ProductRepository
	Links    ports.CategoryLinkRepository
	Tokens   ports.SearchTokenRepository
	Store    ports.ObjectStore
	Queue    ports.CleanupQueue
	Events   ports.EventPublisher
	Engine   ports.SearchEngine

	TitleNormalizer *pipeline.TitleNormalizer
	CategoryLinks   *pipeline.CategoryLinkDenormalizer
	JoinRowSync     *pipeline.JoinRowSync
	SearchIndexer   *pipeline.SearchIndexer
	DeleteProduct   *commandhandlers.DeleteProductHandler
	CleanupWorker   *workers.CleanupWorker
	SearchProducts  *queryhandlers.SearchProductsHandler
}
