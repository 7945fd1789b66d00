package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/correlearn/backend/internal/api"
	"github.com/correlearn/backend/internal/content"
	"github.com/correlearn/backend/internal/domain/flashcard"
	"github.com/correlearn/backend/internal/domain/quiz"
	"github.com/correlearn/backend/internal/service"
	"github.com/correlearn/backend/internal/store"
)

// newTestServer wires the full stack over the seed catalog and an
// in-memory store.
func newTestServer(t *testing.T) (*http.ServeMux, []flashcard.Flashcard, []quiz.Question) {
	t.Helper()

	cards := content.Flashcards()
	questions := content.Questions()
	s := store.NewMemory(cards, questions)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	progressSvc := service.NewProgressService(s, logger)
	quizSvc := service.NewQuizService(s, progressSvc, logger)
	handler := api.NewHandler(s, quizSvc, progressSvc, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)
	return mux, cards, questions
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListFlashcards(t *testing.T) {
	mux, cards, _ := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/flashcards", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []api.FlashcardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != len(cards) {
		t.Errorf("expected %d flashcards, got %d", len(cards), len(got))
	}
	if got[0].Term != cards[0].Term {
		t.Errorf("expected catalog order preserved, got first term %q", got[0].Term)
	}
}

func TestListQuizQuestions_WithholdsAnswerKey(t *testing.T) {
	mux, _, questions := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/quiz/questions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []api.QuizQuestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != len(questions) {
		t.Errorf("expected %d questions, got %d", len(questions), len(got))
	}

	body := rec.Body.String()
	if strings.Contains(body, "correctAnswer") || strings.Contains(body, "correct_answer") {
		t.Error("question listing must not include the answer key")
	}
	if strings.Contains(body, "explanation") {
		t.Error("question listing must not include explanations before submission")
	}
}

func TestSubmitQuiz_AllCorrect(t *testing.T) {
	mux, _, questions := newTestServer(t)

	answers := make([]int, len(questions))
	for i, q := range questions {
		answers[i] = q.CorrectAnswer
	}

	rec := doJSON(t, mux, http.MethodPost, "/quiz/submit", api.SubmitQuizRequest{Answers: answers})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result api.QuizResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Score != len(questions) {
		t.Errorf("expected score %d, got %d", len(questions), result.Score)
	}
	if result.Percentage != 100.0 {
		t.Errorf("expected percentage 100.0, got %v", result.Percentage)
	}
	if len(result.Answers) != len(questions) {
		t.Errorf("expected %d reviews, got %d", len(questions), len(result.Answers))
	}
	for i, review := range result.Answers {
		if review.Explanation == "" {
			t.Errorf("review %d missing explanation", i)
		}
	}
}

func TestSubmitQuiz_MalformedRejectedWithoutRecording(t *testing.T) {
	mux, _, questions := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{"wrong count", api.SubmitQuizRequest{Answers: []int{0, 1}}},
		{"out of bounds", api.SubmitQuizRequest{Answers: outOfBoundsAnswers(questions)}},
		{"missing answers field", map[string]any{}},
		{"wrong type", map[string]any{"answers": "not-an-array"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, mux, http.MethodPost, "/quiz/submit", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}

	// None of the rejected submissions may have touched progress
	rec := doJSON(t, mux, http.MethodGet, "/progress", nil)
	var p api.ProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode progress: %v", err)
	}
	if p.QuizzesTaken != 0 {
		t.Errorf("rejected submissions were recorded: quizzesTaken=%d", p.QuizzesTaken)
	}
}

func outOfBoundsAnswers(questions []quiz.Question) []int {
	answers := make([]int, len(questions))
	answers[0] = len(questions[0].Options) // one past the last option
	return answers
}

func TestMarkFlashcardViewed(t *testing.T) {
	mux, cards, _ := newTestServer(t)
	cardID := cards[0].ID

	// Twice: second view is a no-op
	for i := 0; i < 2; i++ {
		rec := doJSON(t, mux, http.MethodPost, "/flashcards/viewed", api.MarkViewedRequest{CardID: cardID})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, mux, http.MethodGet, "/progress", nil)
	var p api.ProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode progress: %v", err)
	}
	if p.FlashcardsViewedCount != 1 {
		t.Errorf("expected 1 viewed card, got %d", p.FlashcardsViewedCount)
	}
}

func TestMarkFlashcardViewed_Invalid(t *testing.T) {
	mux, _, _ := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/flashcards/viewed", api.MarkViewedRequest{CardID: ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty card_id, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/flashcards/viewed", api.MarkViewedRequest{CardID: "no-such-card"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown card_id, got %d", rec.Code)
	}
}

func TestProgress_AfterSubmissions(t *testing.T) {
	mux, _, questions := newTestServer(t)

	allCorrect := make([]int, len(questions))
	for i, q := range questions {
		allCorrect[i] = q.CorrectAnswer
	}
	allWrong := make([]int, len(questions))
	for i, q := range questions {
		// pick a valid index that is not the correct one
		allWrong[i] = (q.CorrectAnswer + 1) % len(q.Options)
	}

	doJSON(t, mux, http.MethodPost, "/quiz/submit", api.SubmitQuizRequest{Answers: allCorrect})
	doJSON(t, mux, http.MethodPost, "/quiz/submit", api.SubmitQuizRequest{Answers: allWrong})

	rec := doJSON(t, mux, http.MethodGet, "/progress", nil)
	var p api.ProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode progress: %v", err)
	}

	if p.QuizzesTaken != 2 {
		t.Errorf("expected 2 quizzes taken, got %d", p.QuizzesTaken)
	}
	if p.TotalQuizScore != len(questions) {
		t.Errorf("expected total score %d, got %d", len(questions), p.TotalQuizScore)
	}
	if p.LastQuizScore == nil || *p.LastQuizScore != 0 {
		t.Errorf("expected last score 0, got %v", p.LastQuizScore)
	}
}

func TestExport(t *testing.T) {
	mux, cards, questions := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var export api.ExportData
	if err := json.Unmarshal(rec.Body.Bytes(), &export); err != nil {
		t.Fatalf("failed to decode export: %v", err)
	}
	if export.Version != "1.0" {
		t.Errorf("expected version 1.0, got %q", export.Version)
	}
	if len(export.Flashcards) != len(cards) {
		t.Errorf("expected %d flashcards, got %d", len(cards), len(export.Flashcards))
	}
	if len(export.Questions) != len(questions) {
		t.Errorf("expected %d questions, got %d", len(questions), len(export.Questions))
	}
	// Unlike the question feed, the export keeps answer keys
	if export.Questions[0].CorrectAnswer != questions[0].CorrectAnswer {
		t.Errorf("export answer key mismatch: got %d, want %d", export.Questions[0].CorrectAnswer, questions[0].CorrectAnswer)
	}
}
