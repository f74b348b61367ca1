package parser

import (
	"strings"

	"studyaid/internal/domain"
)

const answerLinePrefix = "Answer:"

// ParseQuiz extracts multiple-choice questions from raw model output.
// Questions are separated by one or more blank lines. Within a block the
// first line is the question text verbatim (numbering included), lines
// matching the option pattern become options in encounter order, and the
// first "Answer:" line sets the correct-answer letter. A block is emitted
// even when it yields no options or no answer; rendering handles both.
func ParseQuiz(raw string) []domain.QuizQuestion {
	var questions []domain.QuizQuestion
	for _, block := range splitBlocks(raw) {
		lines := strings.Split(block, "\n")
		question := domain.QuizQuestion{Question: lines[0]}
		answered := false
		for _, line := range lines[1:] {
			if letter, text, ok := parseOption(line); ok {
				question.Options = append(question.Options, domain.QuizOption{Letter: letter, Text: text})
				continue
			}
			if !answered && strings.HasPrefix(line, answerLinePrefix) {
				// First answer line wins; later ones are ignored.
				_, after, _ := strings.Cut(line, ":")
				question.CorrectAnswer = strings.TrimSpace(after)
				answered = true
			}
		}
		questions = append(questions, question)
	}
	return questions
}

// splitBlocks cuts raw text into question blocks on runs of blank lines.
func splitBlocks(raw string) []string {
	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

// parseOption matches "X) text" where X is a single letter A-D.
func parseOption(line string) (letter, text string, ok bool) {
	if len(line) < 2 || line[1] != ')' {
		return "", "", false
	}
	if line[0] < 'A' || line[0] > 'D' {
		return "", "", false
	}
	return string(line[0]), strings.TrimSpace(line[2:]), true
}
