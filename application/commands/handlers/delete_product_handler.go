package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"libreria-backend/application/commands"
	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	pkgerrors "libreria-backend/pkg/errors"
)

// DeleteProductHandler is phase A of the deletion cascade: it looks up
// the product's image paths best-effort and enqueues a cleanup job. The
// caller is acknowledged as soon as the job is queued; the cascade itself
// is asynchronous and never transactional with the request.
type DeleteProductHandler struct {
	products     ports.ProductRepository
	queue        ports.CleanupQueue
	initialDelay time.Duration
	logger       *zap.Logger
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(
	products ports.ProductRepository,
	queue ports.CleanupQueue,
	initialDelay time.Duration,
	logger *zap.Logger,
) *DeleteProductHandler {
	return &DeleteProductHandler{
		products:     products,
		queue:        queue,
		initialDelay: initialDelay,
		logger:       logger,
	}
}

// Handle executes the delete product command. A failed product read is
// tolerated: the job is enqueued with an empty image list and the worker
// falls back to a prefix listing. A failed enqueue is returned so the
// caller can surface it.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd commands.DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return pkgerrors.NewValidationError("product id is required").WithCause(err)
	}

	var images []string
	product, err := h.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		h.logger.Warn("Could not read product before deletion, proceeding without image paths",
			zap.String("productID", cmd.ProductID),
			zap.Error(err),
		)
	} else {
		images = product.Images
	}

	job := catalog.CleanupJob{
		JobID:         uuid.NewString(),
		ProductID:     cmd.ProductID,
		ProductImages: images,
		RetryCount:    0,
	}

	if err := h.queue.Enqueue(ctx, job, h.initialDelay); err != nil {
		h.logger.Error("Failed to enqueue cleanup job",
			zap.String("productID", cmd.ProductID),
			zap.Error(err),
		)
		return fmt.Errorf("enqueue cleanup job for product %s: %w", cmd.ProductID, err)
	}

	h.logger.Info("Scheduled product cleanup",
		zap.String("productID", cmd.ProductID),
		zap.String("jobID", job.JobID),
		zap.Int("images", len(images)),
		zap.Duration("delay", h.initialDelay),
	)
	return nil
}
