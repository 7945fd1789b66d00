// internal/service/quiz.go
package service

import (
	"context"
	"log/slog"

	"github.com/correlearn/backend/internal/domain/quiz"
	"github.com/correlearn/backend/internal/store"
)

// QuizService evaluates submissions against the question bank. Each
// Evaluate call is one validate → grade → record transaction: either
// the caller gets a full result and progress was updated exactly once,
// or nothing changed.
type QuizService struct {
	store    store.Store
	progress *ProgressService
	logger   *slog.Logger
}

// NewQuizService creates a QuizService.
func NewQuizService(s store.Store, progress *ProgressService, logger *slog.Logger) *QuizService {
	return &QuizService{
		store:    s,
		progress: progress,
		logger:   logger,
	}
}

// Evaluate grades the submitted answer list. Validation failures come
// back as *quiz.MalformedSubmissionError (or quiz.ErrEmptyQuestionBank)
// with progress untouched.
func (qs *QuizService) Evaluate(ctx context.Context, answers []int) (*quiz.Result, error) {
	questions, err := qs.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	result, err := quiz.Grade(questions, answers)
	if err != nil {
		return nil, err
	}

	// Record before returning so a graded-but-unrecorded result is
	// never observable.
	if _, err := qs.progress.RecordQuiz(ctx, result.Score); err != nil {
		return nil, err
	}

	qs.logger.Info("quiz evaluated",
		"score", result.Score,
		"total", result.Total,
	)
	return result, nil
}
