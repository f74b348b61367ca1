// Package render maps parsed output plus ephemeral UI state to view
// models. A Session lives for exactly one generation result; callers
// create a fresh one whenever a new result replaces the old.
package render

// Session holds the per-result interaction state: which flashcards are
// currently flipped and which quiz answers have been locked in.
type Session struct {
	flipped   map[int]bool
	selection map[int]string
}

// NewSession returns an empty session with nothing flipped or answered.
func NewSession() *Session {
	return &Session{
		flipped:   make(map[int]bool),
		selection: make(map[int]string),
	}
}

// ToggleFlip flips membership of index in the flipped set. Out-of-range
// indices are tolerated; they simply never correspond to a rendered card.
func (s *Session) ToggleFlip(index int) {
	if s.flipped[index] {
		delete(s.flipped, index)
		return
	}
	s.flipped[index] = true
}

// IsFlipped reports whether the card at index is showing its answer side.
func (s *Session) IsFlipped(index int) bool {
	return s.flipped[index]
}

// SelectAnswer records letter as the answer for questionIndex. The first
// answer is final: once a question has a recorded selection, further calls
// are no-ops.
func (s *Session) SelectAnswer(questionIndex int, letter string) {
	if _, answered := s.selection[questionIndex]; answered {
		return
	}
	s.selection[questionIndex] = letter
}

// SelectedAnswer returns the recorded letter for questionIndex, if any.
func (s *Session) SelectedAnswer(questionIndex int) (string, bool) {
	letter, ok := s.selection[questionIndex]
	return letter, ok
}
