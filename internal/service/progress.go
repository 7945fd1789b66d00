// internal/service/progress.go
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/correlearn/backend/internal/domain/progress"
	"github.com/correlearn/backend/internal/store"
)

// ProgressService is the sole mutator of user progress. Every mutation
// runs the whole read-modify-write cycle under one mutex, so concurrent
// submissions cannot lose increments.
type ProgressService struct {
	store  store.Store
	logger *slog.Logger

	mu sync.Mutex
}

// NewProgressService creates a ProgressService.
func NewProgressService(s store.Store, logger *slog.Logger) *ProgressService {
	return &ProgressService{
		store:  s,
		logger: logger,
	}
}

// RecordQuiz folds one completed submission into the cumulative stats
// and returns the post-mutation snapshot.
func (ps *ProgressService) RecordQuiz(ctx context.Context, score int) (*progress.Progress, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	p, err := ps.store.GetProgress(ctx)
	if err != nil {
		return nil, err
	}

	p.RecordQuiz(score)
	if err := ps.store.SaveProgress(ctx, p); err != nil {
		return nil, err
	}

	ps.logger.Info("quiz recorded",
		"score", score,
		"quizzes_taken", p.QuizzesTaken,
		"total_quiz_score", p.TotalQuizScore,
	)
	return p, nil
}

// RecordFlashcardView marks a card as seen and returns the snapshot.
// The card id must name a card in the catalog: an unknown id is
// rejected with store.ErrNotFound before progress is touched. Viewing
// the same card again is a no-op.
func (ps *ProgressService) RecordFlashcardView(ctx context.Context, cardID string) (*progress.Progress, error) {
	if _, err := ps.store.GetFlashcard(ctx, cardID); err != nil {
		return nil, err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	p, err := ps.store.GetProgress(ctx)
	if err != nil {
		return nil, err
	}

	p.RecordFlashcardViewed(cardID)
	if err := ps.store.SaveProgress(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Snapshot returns a read-only copy of the current progress.
func (ps *ProgressService) Snapshot(ctx context.Context) (*progress.Progress, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.store.GetProgress(ctx)
}
