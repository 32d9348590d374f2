package events

import "time"

// SourceCatalog is the event source attributed to pipeline-emitted events
const SourceCatalog = "libreria.catalog"

// CatalogEvent is a lifecycle event emitted by the pipeline for ops
// consumers (dashboards, alarms). Emission is always best-effort.
type CatalogEvent interface {
	EventType() string
	OccurredAt() time.Time
}

// CleanupCompleted is emitted when both steps of a cleanup job succeed
type CleanupCompleted struct {
	ProductID      string    `json:"productId"`
	LinksDeleted   int       `json:"linksDeleted"`
	ObjectsDeleted int       `json:"objectsDeleted"`
	RetryCount     int       `json:"retryCount"`
	Timestamp      time.Time `json:"timestamp"`
}

// EventType implements CatalogEvent
func (e CleanupCompleted) EventType() string { return "catalog.cleanup.completed" }

// OccurredAt implements CatalogEvent
func (e CleanupCompleted) OccurredAt() time.Time { return e.Timestamp }

// CleanupExhausted is emitted when a cleanup job is dropped at the retry
// ceiling with work still outstanding.
type CleanupExhausted struct {
	ProductID  string    `json:"productId"`
	RetryCount int       `json:"retryCount"`
	LastError  string    `json:"lastError,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventType implements CatalogEvent
func (e CleanupExhausted) EventType() string { return "catalog.cleanup.exhausted" }

// OccurredAt implements CatalogEvent
func (e CleanupExhausted) OccurredAt() time.Time { return e.Timestamp }
