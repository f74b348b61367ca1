package dto

import "studyaid/internal/domain"

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Type        string            `json:"type"`
	Text        string            `json:"text"`
	Constraints map[string]string `json:"constraints,omitempty"`
}

// GenerateResponse carries the raw model output together with its parsed
// structure, so the client can render without re-parsing.
type GenerateResponse struct {
	Type    string              `json:"type"`
	Content string              `json:"content"`
	Parsed  domain.ParsedOutput `json:"parsed"`
}

// LabelsResponse exposes the catalog's UI button captions per request type.
type LabelsResponse struct {
	Labels map[string]string `json:"labels"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
