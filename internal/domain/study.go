package domain

// OutputKind tags the variant carried by a ParsedOutput.
type OutputKind string

const (
	OutputPlainText  OutputKind = "plain_text"
	OutputFlashcards OutputKind = "flashcards"
	OutputQuiz       OutputKind = "quiz"
)

// TextNodeKind classifies a single line of plain/markdown-like model output.
type TextNodeKind string

const (
	NodeHeading    TextNodeKind = "heading"
	NodeSubHeading TextNodeKind = "sub_heading"
	NodeListItem   TextNodeKind = "list_item"
	NodeBreak      TextNodeKind = "break"
	NodeParagraph  TextNodeKind = "paragraph"
)

// TextNode is one rendered line of plain-text output, in input order.
type TextNode struct {
	Kind TextNodeKind `json:"kind"`
	Text string       `json:"text,omitempty"`
}

// Flashcard is a single question/answer pair parsed from model output.
// Both fields are non-empty after trimming; pairs that would violate this
// are dropped during parsing rather than surfaced as errors.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizOption is one selectable answer of a multiple-choice question.
type QuizOption struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuizQuestion is a multiple-choice question parsed from model output.
// CorrectAnswer is empty when no parseable answer line was found; the
// question still renders, it just cannot be marked.
type QuizQuestion struct {
	Question      string       `json:"question"`
	Options       []QuizOption `json:"options"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
}

// ParsedOutput is the tagged result of parsing raw model text. Exactly one
// of the payload fields is populated, according to Kind.
type ParsedOutput struct {
	Kind       OutputKind     `json:"kind"`
	Nodes      []TextNode     `json:"nodes,omitempty"`
	Flashcards []Flashcard    `json:"flashcards,omitempty"`
	Questions  []QuizQuestion `json:"questions,omitempty"`
}
