package catalog

import (
	"strings"
	"time"

	pkgerrors "libreria-backend/pkg/errors"
)

// MaxCleanupRetries bounds the re-enqueue chain of a cleanup job. A job
// that still fails with RetryCount at the ceiling is dropped; any
// remaining join rows or storage objects are accepted residual risk.
const MaxCleanupRetries = 3

// CleanupJob is the queue message driving the asynchronous deletion
// cascade. It is created once per deletion request and re-enqueued with
// an incremented RetryCount on partial failure.
type CleanupJob struct {
	JobID          string   `json:"jobId"`
	ProductID      string   `json:"productId"`
	ProductImages  []string `json:"productImages"`
	RetryCount     int      `json:"retryCount"`
	LastError      string   `json:"lastError,omitempty"`
	SkipCategories bool     `json:"skipCategories,omitempty"`
}

// Validate checks the minimal shape required of a cleanup job
func (j *CleanupJob) Validate() error {
	if strings.TrimSpace(j.ProductID) == "" {
		return pkgerrors.NewValidationError("cleanup job product id is required")
	}
	if j.RetryCount < 0 {
		return pkgerrors.NewValidationError("cleanup job retry count must not be negative")
	}
	return nil
}

// Exhausted reports whether the job has reached the retry ceiling
func (j *CleanupJob) Exhausted() bool {
	return j.RetryCount >= MaxCleanupRetries
}

// NextRetry returns a copy of the job prepared for re-enqueueing together
// with its delay. Delays double per attempt: 2s, 4s, 8s. No jitter is
// applied, matching the original cascade behavior.
func (j *CleanupJob) NextRetry(lastErr string, skipCategories bool) (CleanupJob, time.Duration) {
	next := *j
	next.RetryCount = j.RetryCount + 1
	next.LastError = lastErr
	next.SkipCategories = skipCategories
	delay := time.Duration(1<<uint(j.RetryCount+1)) * time.Second
	return next, delay
}
