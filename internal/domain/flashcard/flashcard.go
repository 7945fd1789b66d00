package flashcard

import (
	"errors"

	"github.com/correlearn/backend/internal/id"
)

// Flashcard is a term/definition pair used for concept review.
// Records are created once at startup from the seed catalog and never
// mutated afterwards.
type Flashcard struct {
	ID         string
	Term       string
	Definition string
	Formula    *string // optional, nil when the concept has no formula
	Example    string
	Category   string
}

// New creates a Flashcard with a generated ID.
func New(term, definition string, formula *string, example, category string) (*Flashcard, error) {
	if term == "" {
		return nil, errors.New("flashcard term cannot be empty")
	}
	if definition == "" {
		return nil, errors.New("flashcard definition cannot be empty")
	}
	if category == "" {
		return nil, errors.New("flashcard category cannot be empty")
	}

	return &Flashcard{
		ID:         id.New(),
		Term:       term,
		Definition: definition,
		Formula:    formula,
		Example:    example,
		Category:   category,
	}, nil
}
