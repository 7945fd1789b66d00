package api

import (
	"net/http"

	"github.com/correlearn/backend/internal/domain/progress"
)

// ── Request / Response types ────────────────────────────────────────────────

type ProgressResponse struct {
	FlashcardsViewed      []string `json:"flashcardsViewed"`
	FlashcardsViewedCount int      `json:"flashcardsViewedCount" example:"4"`
	QuizzesTaken          int      `json:"quizzesTaken" example:"2"`
	TotalQuizScore        int      `json:"totalQuizScore" example:"35"`
	LastQuizScore         *int     `json:"lastQuizScore,omitempty" example:"18"`
	AverageScore          float64  `json:"averageScore" example:"17.5"`
}

func progressResponse(p *progress.Progress) ProgressResponse {
	return ProgressResponse{
		FlashcardsViewed:      p.FlashcardsViewed,
		FlashcardsViewedCount: len(p.FlashcardsViewed),
		QuizzesTaken:          p.QuizzesTaken,
		TotalQuizScore:        p.TotalQuizScore,
		LastQuizScore:         p.LastQuizScore,
		AverageScore:          p.AverageScore(),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getProgress returns the current progress snapshot.
// @Summary      Get user progress
// @Description  Returns cumulative flashcard and quiz statistics for the current user.
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  ProgressResponse
// @Failure      500  {object}  map[string]string
// @Router       /progress [get]
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := h.progress.Snapshot(ctx)
	if h.handleStoreError(w, err, "progress") {
		return
	}

	respondJSON(w, http.StatusOK, progressResponse(p))
}
