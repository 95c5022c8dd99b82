package models

import (
	"errors"
	"strings"
)

// QuestionMode selects the kind of questions the generator produces.
type QuestionMode string

// Question modes accepted by the generation endpoints.
const (
	QuestionModeMultipleChoice QuestionMode = "multiple_choice"
	QuestionModeOpenEnded      QuestionMode = "open-ended"
	QuestionModeTrueFalse      QuestionMode = "true_false"
)

// Difficulty selects the target difficulty of generated questions.
type Difficulty string

// Difficulty levels accepted by the generation endpoints.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Generation request bounds enforced client-side before any network call.
const (
	MinCardCount = 1
	MaxCardCount = 50
)

// Validation errors for [GenerateRequest].
var (
	ErrEmptyGenerationText = errors.New("no text provided for flashcard generation")
	ErrInvalidCardCount    = errors.New("card count must be between 1 and 50")
)

// Options is the 4-way multiple-choice option set of a flashcard.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Flashcard is a single question/answer unit belonging to one deck.
// Cards are read-only from the client's perspective once generated.
type Flashcard struct {
	// ID is the server-assigned card identifier.
	ID string `json:"id"`

	// Question is the prompt shown to the user.
	Question string `json:"question"`

	// Answer is the expected answer for open-ended and true/false cards.
	Answer string `json:"answer,omitempty"`

	// Options holds the multiple-choice option set, if any.
	Options *Options `json:"options,omitempty"`

	// CorrectAnswer is the key (A-D) of the correct option when Options
	// is present.
	CorrectAnswer string `json:"correct_answer,omitempty"`

	// DeckID identifies the owning deck.
	DeckID string `json:"deck_id"`
}

// GenerateRequest is the ephemeral input of one generation call
// (POST /flashcards/generate). It is never persisted.
type GenerateRequest struct {
	// Text is the raw source material. Must not be blank.
	Text string `json:"text"`

	// Count is the requested number of cards, bounded 1-50.
	// Zero lets the backend pick its default.
	Count int `json:"count,omitempty"`

	// QuestionMode selects the question format. Empty for backend default.
	QuestionMode QuestionMode `json:"question_mode,omitempty"`

	// Difficulty selects the target difficulty. Empty for backend default.
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// DeckID optionally targets an existing deck for the generated cards.
	DeckID string `json:"deck_id,omitempty"`
}

// Validate checks the client-side invariants of the request: non-blank text
// and a card count within bounds. It is called before any network request is
// made, so invalid input never reaches the backend.
func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyGenerationText
	}

	return validateCount(r.Count)
}

// GenerateOptions carries the optional generation parameters of a file
// upload (POST /flashcards/upload). The file itself travels separately as a
// multipart part.
type GenerateOptions struct {
	Count        int
	QuestionMode QuestionMode
	Difficulty   Difficulty
	DeckID       string
}

// Validate checks the card count bounds.
func (o GenerateOptions) Validate() error {
	return validateCount(o.Count)
}

func validateCount(count int) error {
	if count != 0 && (count < MinCardCount || count > MaxCardCount) {
		return ErrInvalidCardCount
	}
	return nil
}
