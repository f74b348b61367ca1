package domain

import (
	"context"
	"time"
)

// HistoryRecord is one saved generation result. Records are append-only;
// deletion is hard, there is no soft-delete or versioning.
type HistoryRecord struct {
	ID           int64
	Type         string
	OriginalText string
	Content      string
	CreatedAt    time.Time
}

// HistoryRepository defines the interface (port) for the history store.
type HistoryRepository interface {
	// List returns all saved records, newest first.
	List(ctx context.Context) ([]HistoryRecord, error)

	// Save appends a record and returns it with the store-assigned id.
	Save(ctx context.Context, recordType, originalText, content string) (*HistoryRecord, error)

	// Delete removes a record by id. Deleting a non-existent id is not
	// an error.
	Delete(ctx context.Context, id int64) error
}
