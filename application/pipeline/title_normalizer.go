package pipeline

import (
	"context"
	"fmt"

	awsevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	"libreria-backend/domain/events"
)

// TitleNormalizer reacts to product-table change events and writes the
// normalized, accent-stripped title plus the searchable marker back onto
// the product record. The write is conditional on the stored value
// differing from the computed one; without that guard every write-back
// would re-trigger this same handler through the stream.
type TitleNormalizer struct {
	products ports.ProductRepository
	logger   *zap.Logger
}

// NewTitleNormalizer creates a new title normalizer
func NewTitleNormalizer(products ports.ProductRepository, logger *zap.Logger) *TitleNormalizer {
	return &TitleNormalizer{
		products: products,
		logger:   logger,
	}
}

// HandleStream processes a batch of product-table stream records.
// Malformed records are logged and skipped; write failures other than the
// expected conditional no-op are returned so the host redelivers the
// batch.
func (n *TitleNormalizer) HandleStream(ctx context.Context, event awsevents.DynamoDBEvent) error {
	for _, rec := range event.Records {
		change, err := events.DecodeProductRecord(rec)
		if err != nil {
			n.logger.Warn("Skipping malformed product record",
				zap.String("eventID", rec.EventID),
				zap.Error(err),
			)
			continue
		}

		if change.Kind == events.ChangeRemove {
			continue
		}

		product := change.New
		normalized := catalog.NormalizeTitle(product.Title)

		updated, err := n.products.SetNormalizedTitle(ctx, product.ID, normalized)
		if err != nil {
			n.logger.Error("Failed to write normalized title",
				zap.String("productID", product.ID),
				zap.Error(err),
			)
			return fmt.Errorf("normalize title for product %s: %w", product.ID, err)
		}

		if !updated {
			// Stored value already matches; this is the record emitted by
			// our own previous write coming back around.
			n.logger.Debug("Normalized title unchanged",
				zap.String("productID", product.ID),
			)
			continue
		}

		n.logger.Info("Normalized product title",
			zap.String("productID", product.ID),
			zap.String("normalizedTitle", normalized),
		)
	}
	return nil
}
