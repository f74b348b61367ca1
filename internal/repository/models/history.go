package models

import (
	"database/sql"
	"time"
)

// History is the database representation of a saved generation result.
type History struct {
	ID           int64          `db:"id"`
	Type         string         `db:"type"`
	OriginalText sql.NullString `db:"original_text"`
	Content      string         `db:"content"`
	CreatedAt    time.Time      `db:"created_at"`
}
