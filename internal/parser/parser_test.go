package parser

import (
	"testing"

	"studyaid/internal/domain"
	"studyaid/internal/prompt"

	"github.com/stretchr/testify/assert"
)

func TestParse_DispatchesByType(t *testing.T) {
	tests := []struct {
		name       string
		promptType string
		raw        string
		wantKind   domain.OutputKind
	}{
		{"flashcards", prompt.TypeFlashcards, "Q: a\nA: b", domain.OutputFlashcards},
		{"mcq", prompt.TypeMCQ, "Q?\nA) x\nAnswer: A", domain.OutputQuiz},
		{"short_summary", prompt.TypeShortSummary, "# S\nbody", domain.OutputPlainText},
		{"key_points", prompt.TypeKeyPoints, "- p", domain.OutputPlainText},
		{"custom type falls back to plain text", "provenance_explain", "text", domain.OutputPlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse(tt.promptType, tt.raw)
			assert.Equal(t, tt.wantKind, out.Kind)
		})
	}
}

func TestParse_NoContentSniffing(t *testing.T) {
	// Flashcard-looking text requested as a summary stays plain text.
	out := Parse(prompt.TypeShortSummary, "Q: a\nA: b")
	assert.Equal(t, domain.OutputPlainText, out.Kind)
	assert.Empty(t, out.Flashcards)
	assert.Len(t, out.Nodes, 2)
}

func TestParse_MalformedInputNeverEmpty(t *testing.T) {
	// Garbage in, structure out: every kind yields a renderable result.
	garbage := "$$$ ???\x00 not a card"

	cards := Parse(prompt.TypeFlashcards, garbage)
	assert.Equal(t, domain.OutputFlashcards, cards.Kind)
	assert.Empty(t, cards.Flashcards)

	quiz := Parse(prompt.TypeMCQ, garbage)
	assert.Equal(t, domain.OutputQuiz, quiz.Kind)
	assert.Len(t, quiz.Questions, 1)
}
