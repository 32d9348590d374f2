package pipeline

import (
	"context"
	"fmt"

	awsevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	"libreria-backend/domain/events"
	"libreria-backend/pkg/observability"
)

// SearchIndexer reacts to product-table change events and writes one
// search-index row per (token, product) pair, with a denormalized copy of
// the product's display fields. Every change re-derives the full token
// set, so redelivery is harmless.
//
// Known gap: tokens from a previous title or description are not
// retracted when they disappear; the byProduct index on the token table
// exists for that retraction but nothing consumes it yet.
type SearchIndexer struct {
	tokens  ports.SearchTokenRepository
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewSearchIndexer creates a new search indexer
func NewSearchIndexer(
	tokens ports.SearchTokenRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *SearchIndexer {
	return &SearchIndexer{
		tokens:  tokens,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleStream processes a batch of product-table stream records
func (s *SearchIndexer) HandleStream(ctx context.Context, event awsevents.DynamoDBEvent) error {
	for _, rec := range event.Records {
		change, err := events.DecodeProductRecord(rec)
		if err != nil {
			s.logger.Warn("Skipping malformed product record",
				zap.String("eventID", rec.EventID),
				zap.Error(err),
			)
			continue
		}

		if change.Kind == events.ChangeRemove {
			continue
		}

		if err := s.indexProduct(ctx, change.New); err != nil {
			return err
		}
	}
	return nil
}

func (s *SearchIndexer) indexProduct(ctx context.Context, product *catalog.Product) error {
	tokens := catalog.TokenSet(product.Title, product.Description)
	if len(tokens) == 0 {
		return nil
	}

	rows := make([]catalog.SearchToken, 0, len(tokens))
	for _, token := range tokens {
		rows = append(rows, catalog.SearchToken{
			Token:           token,
			ProductID:       product.ID,
			Title:           product.Title,
			Description:     product.Description,
			Price:           product.Price,
			Images:          product.Images,
			CategoryIDs:     product.CategoryIDs,
			NormalizedTitle: product.NormalizedTitle,
			CreatedAt:       product.CreatedAt,
		})
	}

	if err := s.tokens.PutTokens(ctx, rows); err != nil {
		return fmt.Errorf("index tokens for product %s: %w", product.ID, err)
	}

	s.metrics.Count(ctx, "SearchTokensWritten", float64(len(rows)), map[string]string{"table": "product-search-tokens"})
	s.logger.Info("Indexed product tokens",
		zap.String("productID", product.ID),
		zap.Int("tokens", len(rows)),
	)
	return nil
}
