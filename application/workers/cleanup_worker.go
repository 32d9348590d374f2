package workers

import (
	"context"
	"encoding/json"
	"time"

	awsevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	"libreria-backend/domain/events"
	"libreria-backend/pkg/observability"
)

// CleanupWorker is phase B of the deletion cascade. Per job it deletes
// the product's join rows (unless an earlier attempt already did) and its
// storage objects; the two steps run independently, and a failure in one
// does not block the other. Failed jobs are re-enqueued with exponential
// delay up to the retry ceiling, then dropped.
//
// The worker owns its retry policy, so handled failures return nil to the
// host: platform redelivery of the original message would otherwise race
// the explicitly re-enqueued copy.
type CleanupWorker struct {
	links   ports.CategoryLinkRepository
	store   ports.ObjectStore
	queue   ports.CleanupQueue
	events  ports.EventPublisher
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCleanupWorker creates a new cleanup worker
func NewCleanupWorker(
	links ports.CategoryLinkRepository,
	store ports.ObjectStore,
	queue ports.CleanupQueue,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *CleanupWorker {
	return &CleanupWorker{
		links:   links,
		store:   store,
		queue:   queue,
		events:  publisher,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleEvent consumes a batch of queue messages
func (w *CleanupWorker) HandleEvent(ctx context.Context, event awsevents.SQSEvent) error {
	for _, record := range event.Records {
		var job catalog.CleanupJob
		if err := json.Unmarshal([]byte(record.Body), &job); err != nil {
			w.logger.Error("Dropping undecodable cleanup message",
				zap.String("messageID", record.MessageId),
				zap.Error(err),
			)
			continue
		}
		if err := job.Validate(); err != nil {
			w.logger.Error("Dropping invalid cleanup job",
				zap.String("messageID", record.MessageId),
				zap.Error(err),
			)
			continue
		}
		if err := w.HandleJob(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

// HandleJob runs both cleanup steps for one job
func (w *CleanupWorker) HandleJob(ctx context.Context, job catalog.CleanupJob) error {
	var (
		linksDeleted   int
		objectsDeleted int
		categoriesErr  error
		imagesErr      error
	)

	if job.SkipCategories {
		w.logger.Debug("Skipping category cleanup, already completed on an earlier attempt",
			zap.String("productID", job.ProductID),
		)
	} else {
		linksDeleted, categoriesErr = w.links.DeleteByProduct(ctx, job.ProductID)
		if categoriesErr != nil {
			w.logger.Error("Category cleanup failed",
				zap.String("productID", job.ProductID),
				zap.Int("retryCount", job.RetryCount),
				zap.Error(categoriesErr),
			)
		}
	}

	objectsDeleted, imagesErr = w.deleteImages(ctx, job)
	if imagesErr != nil {
		w.logger.Error("Image cleanup failed",
			zap.String("productID", job.ProductID),
			zap.Int("retryCount", job.RetryCount),
			zap.Error(imagesErr),
		)
	}

	if categoriesErr == nil && imagesErr == nil {
		w.logger.Info("Cleanup job completed",
			zap.String("productID", job.ProductID),
			zap.String("jobID", job.JobID),
			zap.Int("linksDeleted", linksDeleted),
			zap.Int("objectsDeleted", objectsDeleted),
		)
		w.publish(ctx, events.CleanupCompleted{
			ProductID:      job.ProductID,
			LinksDeleted:   linksDeleted,
			ObjectsDeleted: objectsDeleted,
			RetryCount:     job.RetryCount,
			Timestamp:      time.Now().UTC(),
		})
		return nil
	}

	lastErr := categoriesErr
	if imagesErr != nil {
		lastErr = imagesErr
	}

	if job.Exhausted() {
		w.logger.Error("Cleanup job dropped: max retries reached",
			zap.String("productID", job.ProductID),
			zap.String("jobID", job.JobID),
			zap.Int("retryCount", job.RetryCount),
			zap.Error(lastErr),
		)
		w.metrics.Count(ctx, "CleanupJobsExhausted", 1, nil)
		w.publish(ctx, events.CleanupExhausted{
			ProductID:  job.ProductID,
			RetryCount: job.RetryCount,
			LastError:  lastErr.Error(),
			Timestamp:  time.Now().UTC(),
		})
		return nil
	}

	// A completed category step must not be redone on retry.
	skipCategories := job.SkipCategories || categoriesErr == nil
	retry, delay := job.NextRetry(lastErr.Error(), skipCategories)

	if err := w.queue.Enqueue(ctx, retry, delay); err != nil {
		// Could not schedule the retry; surface to the host so the
		// original message is redelivered instead.
		w.logger.Error("Failed to re-enqueue cleanup job",
			zap.String("productID", job.ProductID),
			zap.Error(err),
		)
		return err
	}

	w.metrics.Count(ctx, "CleanupJobsRetried", 1, nil)
	w.logger.Warn("Cleanup job re-enqueued",
		zap.String("productID", job.ProductID),
		zap.String("jobID", job.JobID),
		zap.Int("retryCount", retry.RetryCount),
		zap.Duration("delay", delay),
		zap.Bool("skipCategories", retry.SkipCategories),
	)
	return nil
}

// deleteImages removes the job's storage objects: exactly the listed
// paths when the request handler captured them, otherwise everything
// under the product's image prefix.
func (w *CleanupWorker) deleteImages(ctx context.Context, job catalog.CleanupJob) (int, error) {
	keys := job.ProductImages
	if len(keys) == 0 {
		var err error
		keys, err = w.store.ListByPrefix(ctx, catalog.ImagePrefix+job.ProductID+"/")
		if err != nil {
			return 0, err
		}
	}
	if len(keys) == 0 {
		return 0, nil
	}
	return w.store.DeleteKeys(ctx, keys)
}

func (w *CleanupWorker) publish(ctx context.Context, event events.CatalogEvent) {
	if w.events == nil {
		return
	}
	if err := w.events.Publish(ctx, event); err != nil {
		w.logger.Warn("Failed to publish cleanup event",
			zap.String("eventType", event.EventType()),
			zap.Error(err),
		)
	}
}
