package content_test

import (
	"testing"

	"github.com/correlearn/backend/internal/content"
)

func TestFlashcards(t *testing.T) {
	cards := content.Flashcards()

	if len(cards) != 12 {
		t.Fatalf("expected 12 flashcards, got %d", len(cards))
	}

	seen := make(map[string]bool)
	for i, card := range cards {
		if card.ID == "" {
			t.Errorf("flashcard %d has no id", i)
		}
		if seen[card.ID] {
			t.Errorf("duplicate flashcard id %s", card.ID)
		}
		seen[card.ID] = true
	}

	if cards[0].Term != "Correlation" {
		t.Errorf("expected catalog to open with Correlation, got %q", cards[0].Term)
	}
}

func TestQuestions(t *testing.T) {
	questions := content.Questions()

	if len(questions) != 22 {
		t.Fatalf("expected 22 questions, got %d", len(questions))
	}

	for i, q := range questions {
		if len(q.Options) < 2 {
			t.Errorf("question %d has only %d options", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %d: correct answer %d out of range for %d options", i, q.CorrectAnswer, len(q.Options))
		}
		if q.Explanation == "" {
			t.Errorf("question %d has no explanation", i)
		}
	}
}

func TestFlashcards_FreshIDsPerCall(t *testing.T) {
	a := content.Flashcards()
	b := content.Flashcards()

	if a[0].ID == b[0].ID {
		t.Error("expected each catalog build to generate fresh ids")
	}
}
