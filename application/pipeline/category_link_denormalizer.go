package pipeline

import (
	"context"

	awsevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/events"
)

// CategoryLinkDenormalizer reacts to join-table change events and rebuilds
// the affected products' categoryIds lists. It always recomputes the full
// list from the current join rows rather than patching deltas, so it
// converges under duplicated and reordered delivery.
type CategoryLinkDenormalizer struct {
	products ports.ProductRepository
	links    ports.CategoryLinkRepository
	logger   *zap.Logger
}

// NewCategoryLinkDenormalizer creates a new category-link denormalizer
func NewCategoryLinkDenormalizer(
	products ports.ProductRepository,
	links ports.CategoryLinkRepository,
	logger *zap.Logger,
) *CategoryLinkDenormalizer {
	return &CategoryLinkDenormalizer{
		products: products,
		links:    links,
		logger:   logger,
	}
}

// HandleStream processes a batch of join-table stream records. One
// product failing to recompute must not block the others in the batch, so
// per-product errors are logged and the handler reports success to the
// host.
func (d *CategoryLinkDenormalizer) HandleStream(ctx context.Context, event awsevents.DynamoDBEvent) error {
	productIDs := d.affectedProducts(event)
	for _, productID := range productIDs {
		if err := d.recompute(ctx, productID); err != nil {
			d.logger.Error("Failed to recompute category ids",
				zap.String("productID", productID),
				zap.Error(err),
			)
			continue
		}
	}
	return nil
}

// affectedProducts extracts the distinct product ids touched by the
// batch, preserving first-seen order.
func (d *CategoryLinkDenormalizer) affectedProducts(event awsevents.DynamoDBEvent) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(event.Records))

	for _, rec := range event.Records {
		change, err := events.DecodeCategoryLinkRecord(rec)
		if err != nil {
			d.logger.Warn("Skipping malformed category link record",
				zap.String("eventID", rec.EventID),
				zap.Error(err),
			)
			continue
		}

		productID := change.AffectedProductID()
		if productID == "" {
			continue
		}
		if _, dup := seen[productID]; dup {
			continue
		}
		seen[productID] = struct{}{}
		ids = append(ids, productID)
	}
	return ids
}

func (d *CategoryLinkDenormalizer) recompute(ctx context.Context, productID string) error {
	rows, err := d.links.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	// Empty list still overwrites: removing the last association must
	// clear the product's categoryIds.
	categoryIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		categoryIDs = append(categoryIDs, row.CategoryID)
	}

	if err := d.products.SetCategoryIDs(ctx, productID, categoryIDs); err != nil {
		return err
	}

	d.logger.Info("Rebuilt product category ids",
		zap.String("productID", productID),
		zap.Int("categories", len(categoryIDs)),
	)
	return nil
}
