package dto

import "time"

// SaveHistoryRequest is the body of POST /api/save.
type SaveHistoryRequest struct {
	Type         string `json:"type"`
	OriginalText string `json:"originalText"`
	Content      string `json:"content"`
}

// HistoryResponse represents one saved record in the API response.
type HistoryResponse struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	OriginalText string    `json:"original_text,omitempty"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeleteHistoryResponse acknowledges a deletion.
type DeleteHistoryResponse struct {
	Success bool `json:"success"`
}
