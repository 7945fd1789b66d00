// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches all API routes to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Flashcards
	mux.HandleFunc("GET /flashcards", h.listFlashcards)
	mux.HandleFunc("POST /flashcards/viewed", h.markFlashcardViewed)

	// Quiz
	mux.HandleFunc("GET /quiz/questions", h.listQuizQuestions)
	mux.HandleFunc("POST /quiz/submit", h.submitQuiz)

	// Progress
	mux.HandleFunc("GET /progress", h.getProgress)

	// Export
	mux.HandleFunc("GET /export", h.exportAll)
}
