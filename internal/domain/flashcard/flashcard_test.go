package flashcard_test

import (
	"testing"

	"github.com/correlearn/backend/internal/domain/flashcard"
)

func TestNew(t *testing.T) {
	formula := "r > 0"
	card, err := flashcard.New(
		"Positive Correlation",
		"When one variable increases, the other variable tends to increase as well.",
		&formula,
		"Temperature and ice cream sales typically have positive correlation.",
		"Types",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if card.ID == "" {
		t.Error("expected a generated ID")
	}
	if card.Formula == nil || *card.Formula != "r > 0" {
		t.Errorf("expected formula %q, got %v", "r > 0", card.Formula)
	}
}

func TestNew_NilFormula(t *testing.T) {
	card, err := flashcard.New("Correlation vs Causation", "Correlation does not imply causation.", nil, "Ice cream and drownings.", "Fundamentals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Formula != nil {
		t.Error("expected nil formula to stay nil")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		term       string
		definition string
		category   string
	}{
		{"empty term", "", "def", "cat"},
		{"empty definition", "term", "", "cat"},
		{"empty category", "term", "def", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := flashcard.New(tt.term, tt.definition, nil, "example", tt.category); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
