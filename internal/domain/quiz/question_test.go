package quiz_test

import (
	"testing"

	"github.com/correlearn/backend/internal/domain/quiz"
)

func TestNewQuestion(t *testing.T) {
	q, err := quiz.NewQuestion(
		"The value of correlation coefficient lies between:",
		[]string{"-10 to +10", "-1 to +1", "0 to 1", "-5 to +5"},
		1,
		"The correlation coefficient always ranges from -1 to +1.",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.ID == "" {
		t.Error("expected a generated ID")
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer != 1 {
		t.Errorf("expected correct answer 1, got %d", q.CorrectAnswer)
	}
}

func TestNewQuestion_Invalid(t *testing.T) {
	options := []string{"Positive", "Negative"}

	tests := []struct {
		name          string
		prompt        string
		options       []string
		correctAnswer int
		explanation   string
	}{
		{"empty prompt", "", options, 0, "why"},
		{"single option", "Prompt", []string{"Only"}, 0, "why"},
		{"correct index too large", "Prompt", options, 2, "why"},
		{"negative correct index", "Prompt", options, -1, "why"},
		{"empty explanation", "Prompt", options, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := quiz.NewQuestion(tt.prompt, tt.options, tt.correctAnswer, tt.explanation); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewQuestion_CopiesOptions(t *testing.T) {
	options := []string{"Positive", "Negative"}
	q, err := quiz.NewQuestion("Prompt", options, 0, "why")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	options[0] = "mutated"
	if q.Options[0] != "Positive" {
		t.Error("question options should not alias the caller's slice")
	}
}
