package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	pkgerrors "libreria-backend/pkg/errors"
)

// maxDelay is the SQS per-message delay ceiling
const maxDelay = 900 * time.Second

// CleanupQueue implements ports.CleanupQueue on an SQS queue
type CleanupQueue struct {
	client   *sqs.Client
	queueURL string
	logger   *zap.Logger
}

// NewCleanupQueue creates a new cleanup queue
func NewCleanupQueue(client *sqs.Client, queueURL string, logger *zap.Logger) ports.CleanupQueue {
	return &CleanupQueue{
		client:   client,
		queueURL: queueURL,
		logger:   logger,
	}
}

// Enqueue sends the job as a delayed message
func (q *CleanupQueue) Enqueue(ctx context.Context, job catalog.CleanupJob, delay time.Duration) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal cleanup job %s: %w", job.JobID, err)
	}

	if delay < 0 {
		delay = 0
	}
	if delay > maxDelay {
		delay = maxDelay
	}

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(q.queueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: int32(delay / time.Second),
	})
	if err != nil {
		return pkgerrors.NewQueueError("send cleanup job", err)
	}

	q.logger.Debug("Enqueued cleanup job",
		zap.String("jobID", job.JobID),
		zap.String("productID", job.ProductID),
		zap.Int("retryCount", job.RetryCount),
		zap.Duration("delay", delay),
	)
	return nil
}
