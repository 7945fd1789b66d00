package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyQuestionBank guards the percentage calculation against an
// empty bank. It cannot happen with the seed catalog but it must be a
// named condition, not a division by zero.
var ErrEmptyQuestionBank = errors.New("question bank is empty")

// MalformedSubmissionError reports a submission that cannot be graded:
// either the answer count does not match the bank, or an answer index
// is out of bounds for its question. QuestionIndex is -1 for the count
// mismatch case.
type MalformedSubmissionError struct {
	Reason        string
	QuestionIndex int
}

func (e *MalformedSubmissionError) Error() string {
	if e.QuestionIndex < 0 {
		return e.Reason
	}
	return fmt.Sprintf("question %d: %s", e.QuestionIndex+1, e.Reason)
}

// AnswerReview is the graded outcome for a single question.
type AnswerReview struct {
	QuestionID     string
	SelectedAnswer int
	CorrectAnswer  int
	IsCorrect      bool
	Explanation    string
}

// Result is the full graded output of one submission. Only Score is
// folded into progress; the rest exists for the caller's review screen.
type Result struct {
	Score      int
	Total      int
	Percentage float64
	Answers    []AnswerReview
}

// Grade validates a submission against the bank and scores it.
//
// Validation runs before any grading: the answer count must equal the
// bank size, and every answer must index into its question's options.
// Bounds are checked in ascending question order and fail on the first
// violation. A rejected submission produces no partial result.
//
// Reviews come back in bank order, one per question, each carrying the
// question's explanation whether or not the pick was correct.
func Grade(questions []Question, answers []int) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionBank
	}

	if len(answers) != len(questions) {
		return nil, &MalformedSubmissionError{
			Reason:        fmt.Sprintf("invalid number of answers: got %d, want %d", len(answers), len(questions)),
			QuestionIndex: -1,
		}
	}

	for i, a := range answers {
		if a < 0 || a >= len(questions[i].Options) {
			return nil, &MalformedSubmissionError{
				Reason:        fmt.Sprintf("answer index %d out of range for %d options", a, len(questions[i].Options)),
				QuestionIndex: i,
			}
		}
	}

	score := 0
	reviews := make([]AnswerReview, len(questions))
	for i, q := range questions {
		isCorrect := answers[i] == q.CorrectAnswer
		if isCorrect {
			score++
		}
		reviews[i] = AnswerReview{
			QuestionID:     q.ID,
			SelectedAnswer: answers[i],
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
			Explanation:    q.Explanation,
		}
	}

	return &Result{
		Score:      score,
		Total:      len(questions),
		Percentage: float64(score) / float64(len(questions)) * 100,
		Answers:    reviews,
	}, nil
}
