package api

import (
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type ExportData struct {
	Version    string              `json:"version"`
	ExportedAt string              `json:"exported_at"`
	Flashcards []FlashcardResponse `json:"flashcards"`
	Questions  []ExportQuestion    `json:"questions"`
	Progress   ProgressResponse    `json:"progress"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll dumps the content catalog and the progress snapshot.
// The export includes answer keys; it is a backup document, not the
// client question feed.
// @Summary      Export everything
// @Description  Returns the full content catalog (including answer keys) and the current progress snapshot as one versioned document.
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.store.ListFlashcards(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load flashcards")
		return
	}

	questions, err := h.store.ListQuestions(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	p, err := h.progress.Snapshot(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Flashcards: make([]FlashcardResponse, len(cards)),
		Questions:  make([]ExportQuestion, len(questions)),
		Progress:   progressResponse(p),
	}

	for i, card := range cards {
		exportData.Flashcards[i] = FlashcardResponse{
			ID:         card.ID,
			Term:       card.Term,
			Definition: card.Definition,
			Formula:    card.Formula,
			Example:    card.Example,
			Category:   card.Category,
		}
	}

	for i, q := range questions {
		exportData.Questions[i] = ExportQuestion{
			ID:            q.ID,
			Question:      q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}

	respondJSON(w, http.StatusOK, exportData)
}
