package store

import (
	"context"
	"sync"

	"github.com/correlearn/backend/internal/domain/flashcard"
	"github.com/correlearn/backend/internal/domain/progress"
	"github.com/correlearn/backend/internal/domain/quiz"
)

// MemoryStore keeps everything in process memory. This is the default:
// progress is volatile by design and resets on restart.
type MemoryStore struct {
	flashcards []flashcard.Flashcard
	questions  []quiz.Question

	mu       sync.RWMutex
	progress *progress.Progress
}

// NewMemory creates a MemoryStore holding the given catalog and zeroed
// progress. The catalog slices are not copied; callers hand over
// ownership and must not mutate them afterwards.
func NewMemory(cards []flashcard.Flashcard, questions []quiz.Question) *MemoryStore {
	return &MemoryStore{
		flashcards: cards,
		questions:  questions,
		progress:   progress.New(),
	}
}

func (s *MemoryStore) ListFlashcards(ctx context.Context) ([]flashcard.Flashcard, error) {
	out := make([]flashcard.Flashcard, len(s.flashcards))
	copy(out, s.flashcards)
	return out, nil
}

func (s *MemoryStore) GetFlashcard(ctx context.Context, id string) (*flashcard.Flashcard, error) {
	for _, card := range s.flashcards {
		if card.ID == id {
			c := card
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListQuestions(ctx context.Context) ([]quiz.Question, error) {
	out := make([]quiz.Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

func (s *MemoryStore) GetProgress(ctx context.Context) (*progress.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.Copy(), nil
}

func (s *MemoryStore) SaveProgress(ctx context.Context, p *progress.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = p.Copy()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
