package pipeline

import (
	"context"
	"fmt"

	awsevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/events"
	"libreria-backend/pkg/observability"
)

// JoinRowSync reacts to product-table change events and propagates the
// product's summary fields onto every join row referencing it, keeping
// category-scoped listings fresh without a join at query time. Errors are
// returned to the host: the overwrite is idempotent, so redelivery simply
// converges.
type JoinRowSync struct {
	links   ports.CategoryLinkRepository
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewJoinRowSync creates a new join-row sync
func NewJoinRowSync(
	links ports.CategoryLinkRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *JoinRowSync {
	return &JoinRowSync{
		links:   links,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleStream processes a batch of product-table stream records
func (s *JoinRowSync) HandleStream(ctx context.Context, event awsevents.DynamoDBEvent) error {
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

		if err := s.syncProduct(ctx, change); err != nil {
			return err
		}
	}
	return nil
}

func (s *JoinRowSync) syncProduct(ctx context.Context, change events.ProductChange) error {
	product := change.New

	rows, err := s.links.ListByProduct(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("list join rows for product %s: %w", product.ID, err)
	}
	if len(rows) == 0 {
		return nil
	}

	for i := range rows {
		rows[i].ApplySummary(product)
	}

	if err := s.links.PutSummaries(ctx, rows); err != nil {
		return fmt.Errorf("sync join rows for product %s: %w", product.ID, err)
	}

	s.metrics.Count(ctx, "JoinRowsSynced", float64(len(rows)), map[string]string{"table": "product-categories"})
	s.logger.Info("Synced product summary onto join rows",
		zap.String("productID", product.ID),
		zap.Int("rows", len(rows)),
	)
	return nil
}
