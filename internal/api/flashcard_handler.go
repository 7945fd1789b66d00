package api

import (
	"errors"
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type FlashcardResponse struct {
	ID         string  `json:"id" example:"8f14e45f-ceea-467b-9c1f-0f0b9a6f3a21"`
	Term       string  `json:"term" example:"Correlation"`
	Definition string  `json:"definition"`
	Formula    *string `json:"formula,omitempty" example:"r > 0"`
	Example    string  `json:"example"`
	Category   string  `json:"category" example:"Fundamentals"`
}

type MarkViewedRequest struct {
	CardID string `json:"card_id" example:"8f14e45f-ceea-467b-9c1f-0f0b9a6f3a21"`
}

func (r *MarkViewedRequest) Validate() error {
	if r.CardID == "" {
		return errors.New("card_id is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listFlashcards lists the flashcard catalog.
// @Summary      List flashcards
// @Description  Returns the full flashcard catalog in its canonical order.
// @Tags         Flashcards
// @Produce      json
// @Success      200  {array}   FlashcardResponse
// @Failure      500  {object}  map[string]string
// @Router       /flashcards [get]
func (h *Handler) listFlashcards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cards, err := h.store.ListFlashcards(ctx)
	if err != nil {
		h.logger.Error("failed to load flashcards", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load flashcards")
		return
	}

	response := make([]FlashcardResponse, len(cards))
	for i, card := range cards {
		response[i] = FlashcardResponse{
			ID:         card.ID,
			Term:       card.Term,
			Definition: card.Definition,
			Formula:    card.Formula,
			Example:    card.Example,
			Category:   card.Category,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// markFlashcardViewed records that the user has seen a flashcard.
// @Summary      Mark a flashcard as viewed
// @Description  Records a card as seen. Viewing the same card twice is a no-op.
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        body  body      MarkViewedRequest  true  "Card that was viewed"
// @Success      200   {object}  ProgressResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "flashcard not found"
// @Failure      500   {object}  map[string]string
// @Router       /flashcards/viewed [post]
func (h *Handler) markFlashcardViewed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req MarkViewedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.progress.RecordFlashcardView(ctx, req.CardID)
	if h.handleStoreError(w, err, "flashcard") {
		return
	}

	respondJSON(w, http.StatusOK, progressResponse(p))
}
