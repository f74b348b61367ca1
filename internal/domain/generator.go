package domain

import "context"

// CompiledRequest is a fully resolved generation request: the template's
// system instruction plus the user message with all placeholders
// substituted. It lives for a single gateway call.
type CompiledRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Generator defines the interface (port) for the language-model gateway.
// Implementations translate every provider-side failure into a
// GENERATION_FAILED domain error; retries, if any, are their own policy.
type Generator interface {
	Generate(ctx context.Context, req CompiledRequest) (string, error)
}
