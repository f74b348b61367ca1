package render

import "studyaid/internal/domain"

// View is the renderable projection of a parsed result combined with the
// session's interaction state.
type View struct {
	Kind      domain.OutputKind `json:"kind"`
	Nodes     []domain.TextNode `json:"nodes,omitempty"`
	Cards     []CardView        `json:"cards,omitempty"`
	Questions []QuestionView    `json:"questions,omitempty"`
}

// CardView is one flashcard with its flip state.
type CardView struct {
	Index    int    `json:"index"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Flipped  bool   `json:"flipped"`
}

// QuestionView is one quiz question with its answer state.
type QuestionView struct {
	Index    int          `json:"index"`
	Question string       `json:"question"`
	Answered bool         `json:"answered"`
	Selected string       `json:"selected,omitempty"`
	Options  []OptionView `json:"options"`
}

// OptionView carries the three flags the renderer needs per option:
// whether it is the recorded-correct option, whether the user picked it,
// and whether it should render as disabled (an unselected, incorrect
// option once the question is answered).
type OptionView struct {
	Letter   string `json:"letter"`
	Text     string `json:"text"`
	Correct  bool   `json:"correct"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
}

// BuildView projects output through the session state. It is a pure
// mapping; neither argument is modified.
func BuildView(output domain.ParsedOutput, session *Session) View {
	view := View{Kind: output.Kind}
	switch output.Kind {
	case domain.OutputFlashcards:
		view.Cards = make([]CardView, 0, len(output.Flashcards))
		for i, card := range output.Flashcards {
			view.Cards = append(view.Cards, CardView{
				Index:    i,
				Question: card.Question,
				Answer:   card.Answer,
				Flipped:  session.IsFlipped(i),
			})
		}
	case domain.OutputQuiz:
		view.Questions = make([]QuestionView, 0, len(output.Questions))
		for i, question := range output.Questions {
			view.Questions = append(view.Questions, buildQuestionView(i, question, session))
		}
	default:
		view.Nodes = output.Nodes
	}
	return view
}

func buildQuestionView(index int, question domain.QuizQuestion, session *Session) QuestionView {
	selected, answered := session.SelectedAnswer(index)
	qv := QuestionView{
		Index:    index,
		Question: question.Question,
		Answered: answered,
		Selected: selected,
		Options:  make([]OptionView, 0, len(question.Options)),
	}
	for _, option := range question.Options {
		isCorrect := question.CorrectAnswer != "" && option.Letter == question.CorrectAnswer
		isSelected := answered && option.Letter == selected
		qv.Options = append(qv.Options, OptionView{
			Letter:   option.Letter,
			Text:     option.Text,
			Correct:  isCorrect,
			Selected: isSelected,
			Disabled: answered && !isSelected && !isCorrect,
		})
	}
	return qv
}
