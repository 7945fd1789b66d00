package store

import (
	"context"
	"errors"

	"github.com/correlearn/backend/internal/domain/flashcard"
	"github.com/correlearn/backend/internal/domain/progress"
	"github.com/correlearn/backend/internal/domain/quiz"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence boundary. The content catalog is seeded once
// and read-only; progress is the only thing that gets written back.
//
// Implementations return copies of progress so mutation stays inside
// the progress service, and they do not serialize callers themselves:
// the service owns the read-modify-write cycle.
type Store interface {
	ListFlashcards(ctx context.Context) ([]flashcard.Flashcard, error)
	GetFlashcard(ctx context.Context, id string) (*flashcard.Flashcard, error)
	ListQuestions(ctx context.Context) ([]quiz.Question, error)

	GetProgress(ctx context.Context) (*progress.Progress, error)
	SaveProgress(ctx context.Context, p *progress.Progress) error

	Close() error
}
