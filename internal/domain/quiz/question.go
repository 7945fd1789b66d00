package quiz

import (
	"errors"
	"fmt"

	"github.com/correlearn/backend/internal/id"
)

// Question is a multiple-choice prompt with exactly one correct option
// index and an explanation shown after submission regardless of whether
// the answer was correct.
type Question struct {
	ID            string
	Prompt        string
	Options       []string
	CorrectAnswer int // zero-based index into Options
	Explanation   string
}

// NewQuestion creates a Question with a generated ID.
func NewQuestion(prompt string, options []string, correctAnswer int, explanation string) (*Question, error) {
	if prompt == "" {
		return nil, errors.New("question prompt cannot be empty")
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("question needs at least 2 options, got %d", len(options))
	}
	if correctAnswer < 0 || correctAnswer >= len(options) {
		return nil, fmt.Errorf("correct answer index %d out of range for %d options", correctAnswer, len(options))
	}
	if explanation == "" {
		return nil, errors.New("question explanation cannot be empty")
	}

	opts := make([]string, len(options))
	copy(opts, options)

	return &Question{
		ID:            id.New(),
		Prompt:        prompt,
		Options:       opts,
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
	}, nil
}
