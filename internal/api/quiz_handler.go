package api

import (
	"errors"
	"net/http"

	"github.com/correlearn/backend/internal/domain/quiz"
)

// ── Request / Response types ────────────────────────────────────────────────

// QuizQuestionResponse deliberately omits the correct answer index.
// The client only learns it from the post-submission review.
type QuizQuestionResponse struct {
	ID       string   `json:"id" example:"b5c2e97a-2f59-4f0a-8d3e-1a7c40d13e02"`
	Question string   `json:"question" example:"Correlation measures the ____."`
	Options  []string `json:"options"`
}

type SubmitQuizRequest struct {
	Answers []int `json:"answers"`
}

func (r *SubmitQuizRequest) Validate() error {
	if r.Answers == nil {
		return errors.New("answers is required")
	}
	return nil
}

type AnswerReviewResponse struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer" example:"1"`
	CorrectAnswer  int    `json:"correctAnswer" example:"1"`
	IsCorrect      bool   `json:"isCorrect" example:"true"`
	Explanation    string `json:"explanation"`
}

type QuizResultResponse struct {
	Score      int                    `json:"score" example:"18"`
	Total      int                    `json:"total" example:"22"`
	Percentage float64                `json:"percentage" example:"81.82"`
	Answers    []AnswerReviewResponse `json:"answers"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuizQuestions lists the question bank without answer keys.
// @Summary      List quiz questions
// @Description  Returns every question with its options. Correct answers are withheld until submission.
// @Tags         Quiz
// @Produce      json
// @Success      200  {array}   QuizQuestionResponse
// @Failure      500  {object}  map[string]string
// @Router       /quiz/questions [get]
func (h *Handler) listQuizQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questions, err := h.store.ListQuestions(ctx)
	if err != nil {
		h.logger.Error("failed to load questions", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	response := make([]QuizQuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = QuizQuestionResponse{
			ID:       q.ID,
			Question: q.Prompt,
			Options:  q.Options,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// submitQuiz grades a full answer set and records the score.
// @Summary      Submit quiz answers
// @Description  Grades one answer per question, in question order. A malformed submission (wrong count, index out of range) is rejected without recording anything.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitQuizRequest  true  "Selected option index per question"
// @Success      200   {object}  QuizResultResponse
// @Failure      400   {object}  map[string]string  "malformed submission"
// @Failure      500   {object}  map[string]string
// @Router       /quiz/submit [post]
func (h *Handler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SubmitQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.quiz.Evaluate(ctx, req.Answers)
	var malformed *quiz.MalformedSubmissionError
	if errors.As(err, &malformed) {
		respondError(w, http.StatusBadRequest, malformed.Error())
		return
	}
	if errors.Is(err, quiz.ErrEmptyQuestionBank) {
		h.logger.Error("question bank is empty")
		respondError(w, http.StatusInternalServerError, "question bank is empty")
		return
	}
	if err != nil {
		h.logger.Error("failed to evaluate quiz", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to evaluate quiz")
		return
	}

	reviews := make([]AnswerReviewResponse, len(result.Answers))
	for i, a := range result.Answers {
		reviews[i] = AnswerReviewResponse{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			CorrectAnswer:  a.CorrectAnswer,
			IsCorrect:      a.IsCorrect,
			Explanation:    a.Explanation,
		}
	}

	respondJSON(w, http.StatusOK, QuizResultResponse{
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		Answers:    reviews,
	})
}
