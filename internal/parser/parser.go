// Package parser turns raw model output into structured results. Model
// output is untrusted free text: nothing in this package returns an error.
// Malformed input degrades to partial or empty structures so that
// rendering never breaks on an unexpected shape.
package parser

import (
	"studyaid/internal/domain"
	"studyaid/internal/prompt"
)

// Parse dispatches raw text to the parser for the given request type.
// Dispatch is by type only; the content is never sniffed.
func Parse(promptType, raw string) domain.ParsedOutput {
	switch promptType {
	case prompt.TypeFlashcards:
		return domain.ParsedOutput{
			Kind:       domain.OutputFlashcards,
			Flashcards: ParseFlashcards(raw),
		}
	case prompt.TypeMCQ:
		return domain.ParsedOutput{
			Kind:      domain.OutputQuiz,
			Questions: ParseQuiz(raw),
		}
	default:
		return domain.ParsedOutput{
			Kind:  domain.OutputPlainText,
			Nodes: ParsePlainText(raw),
		}
	}
}
