package progress

// Progress holds cumulative statistics for the single implicit user:
// which flashcards have been viewed and how past quiz submissions went.
// It lives for the process lifetime (or in the durable store when one
// is configured) and is only ever mutated through the progress service.
type Progress struct {
	FlashcardsViewed []string // viewed card ids, insertion order, no duplicates
	QuizzesTaken     int
	TotalQuizScore   int
	LastQuizScore    *int // nil until the first submission
}

// New returns zeroed progress.
func New() *Progress {
	return &Progress{
		FlashcardsViewed: []string{},
	}
}

// RecordQuiz folds one completed submission into the running totals.
func (p *Progress) RecordQuiz(score int) {
	p.QuizzesTaken++
	p.TotalQuizScore += score
	last := score
	p.LastQuizScore = &last
}

// RecordFlashcardViewed marks a card as seen. Idempotent: a card id
// already present is left alone.
func (p *Progress) RecordFlashcardViewed(cardID string) {
	for _, seen := range p.FlashcardsViewed {
		if seen == cardID {
			return
		}
	}
	p.FlashcardsViewed = append(p.FlashcardsViewed, cardID)
}

// AverageScore is the mean correct count across all submissions,
// 0 before the first one.
func (p *Progress) AverageScore() float64 {
	if p.QuizzesTaken == 0 {
		return 0
	}
	return float64(p.TotalQuizScore) / float64(p.QuizzesTaken)
}

// Copy returns a snapshot that shares no memory with the original, so
// readers cannot mutate the state behind the service's back.
func (p *Progress) Copy() *Progress {
	cp := &Progress{
		FlashcardsViewed: make([]string, len(p.FlashcardsViewed)),
		QuizzesTaken:     p.QuizzesTaken,
		TotalQuizScore:   p.TotalQuizScore,
	}
	copy(cp.FlashcardsViewed, p.FlashcardsViewed)
	if p.LastQuizScore != nil {
		last := *p.LastQuizScore
		cp.LastQuizScore = &last
	}
	return cp
}
