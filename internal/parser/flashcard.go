package parser

import (
	"strings"

	"studyaid/internal/domain"
	"studyaid/internal/logger"

	"go.uber.org/zap"
)

const (
	questionToken = "Q:"
	answerToken   = "A:"
)

// ParseFlashcards extracts question/answer pairs from raw model output.
// The text is split on the literal token "Q:" and each fragment on its
// first "A:"; only that first boundary is authoritative, so any later
// "A:" text stays inside the answer. Fragments without both a non-empty
// question and a non-empty answer after trimming are dropped silently.
// Cards are emitted in encounter order.
func ParseFlashcards(raw string) []domain.Flashcard {
	fragments := strings.Split(raw, questionToken)
	cards := make([]domain.Flashcard, 0, len(fragments))
	dropped := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		parts := strings.SplitN(fragment, answerToken, 2)
		if len(parts) < 2 {
			dropped++
			continue
		}
		question := strings.TrimSpace(parts[0])
		answer := strings.TrimSpace(parts[1])
		if question == "" || answer == "" {
			dropped++
			continue
		}
		cards = append(cards, domain.Flashcard{Question: question, Answer: answer})
	}
	if dropped > 0 {
		logger.Get().Debug("Dropped malformed flashcard fragments",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(cards)))
	}
	return cards
}
