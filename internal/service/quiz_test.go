package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/correlearn/backend/internal/domain/flashcard"
	"github.com/correlearn/backend/internal/domain/quiz"
	"github.com/correlearn/backend/internal/service"
	"github.com/correlearn/backend/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFixture builds an in-memory store with 3 questions (correct
// answers 1, 2, 0; four options each) and one flashcard, plus the
// services on top of it.
func newFixture(t *testing.T) (*store.MemoryStore, *service.QuizService, *service.ProgressService) {
	t.Helper()
	options := []string{"A", "B", "C", "D"}

	var questions []quiz.Question
	for _, c := range []int{1, 2, 0} {
		q, err := quiz.NewQuestion("Prompt", options, c, "Explanation.")
		if err != nil {
			t.Fatalf("failed to build question: %v", err)
		}
		questions = append(questions, *q)
	}

	card, err := flashcard.New("Correlation", "A statistical measure.", nil, "Height and weight.", "Fundamentals")
	if err != nil {
		t.Fatalf("failed to build flashcard: %v", err)
	}

	s := store.NewMemory([]flashcard.Flashcard{*card}, questions)
	logger := discardLogger()
	progressSvc := service.NewProgressService(s, logger)
	quizSvc := service.NewQuizService(s, progressSvc, logger)
	return s, quizSvc, progressSvc
}

func TestEvaluate_RecordsProgress(t *testing.T) {
	_, quizSvc, progressSvc := newFixture(t)
	ctx := context.Background()

	result, err := quizSvc.Evaluate(ctx, []int{1, 2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 3 {
		t.Errorf("expected score 3, got %d", result.Score)
	}

	p, err := progressSvc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.QuizzesTaken != 1 {
		t.Errorf("expected 1 quiz taken, got %d", p.QuizzesTaken)
	}
	if p.TotalQuizScore != 3 {
		t.Errorf("expected total score 3, got %d", p.TotalQuizScore)
	}
	if p.LastQuizScore == nil || *p.LastQuizScore != 3 {
		t.Errorf("expected last score 3, got %v", p.LastQuizScore)
	}
}

func TestEvaluate_CumulativeAcrossSubmissions(t *testing.T) {
	_, quizSvc, progressSvc := newFixture(t)
	ctx := context.Background()

	submissions := [][]int{
		{1, 2, 0}, // score 3
		{0, 0, 1}, // score 0
		{1, 0, 0}, // score 2
	}
	for _, answers := range submissions {
		if _, err := quizSvc.Evaluate(ctx, answers); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	p, err := progressSvc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.QuizzesTaken != 3 {
		t.Errorf("expected 3 quizzes taken, got %d", p.QuizzesTaken)
	}
	if p.TotalQuizScore != 5 {
		t.Errorf("expected total score 5, got %d", p.TotalQuizScore)
	}
	if p.LastQuizScore == nil || *p.LastQuizScore != 2 {
		t.Errorf("expected last score 2, got %v", p.LastQuizScore)
	}
}

func TestEvaluate_RejectedSubmissionLeavesProgressUntouched(t *testing.T) {
	_, quizSvc, progressSvc := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		answers []int
	}{
		{"too few answers", []int{1, 2}},
		{"too many answers", []int{1, 2, 0, 0}},
		{"index out of bounds", []int{1, 5, 0}},
		{"negative index", []int{-1, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quizSvc.Evaluate(ctx, tt.answers)

			var malformed *quiz.MalformedSubmissionError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedSubmissionError, got %v", err)
			}

			p, err := progressSvc.Snapshot(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.QuizzesTaken != 0 {
				t.Errorf("rejected submission mutated progress: taken=%d", p.QuizzesTaken)
			}
			if p.TotalQuizScore != 0 {
				t.Errorf("rejected submission mutated progress: total=%d", p.TotalQuizScore)
			}
		})
	}
}
