// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/correlearn/backend/internal/domain/flashcard"
	"github.com/correlearn/backend/internal/domain/progress"
	"github.com/correlearn/backend/internal/domain/quiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS flashcards (
    id TEXT PRIMARY KEY,
    term TEXT NOT NULL,
    definition TEXT NOT NULL,
    formula TEXT,
    example TEXT NOT NULL,
    category TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    prompt TEXT NOT NULL,
    correct_answer INTEGER NOT NULL,
    explanation TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS question_options (
    question_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    option_text TEXT NOT NULL,
    PRIMARY KEY (question_id, position),
    FOREIGN KEY (question_id) REFERENCES questions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS user_progress (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    quizzes_taken INTEGER NOT NULL,
    total_quiz_score INTEGER NOT NULL,
    last_quiz_score INTEGER
);

CREATE TABLE IF NOT EXISTS viewed_cards (
    card_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL
);
`

// SQLiteStore is the durable swap-in for MemoryStore. Same contract;
// progress survives restarts. Selected with DB_PATH.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at dbPath and seeds
// the content catalog on first open.
func NewSQLite(dbPath string, cards []flashcard.Flashcard, questions []quiz.Question) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.seed(cards, questions); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// seed writes the catalog and the zeroed progress row, but only into an
// empty database. An already-seeded database keeps its ids and progress.
func (s *SQLiteStore) seed(cards []flashcard.Flashcard, questions []quiz.Question) error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM flashcards").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, card := range cards {
		_, err = tx.Exec(
			"INSERT INTO flashcards (id, term, definition, formula, example, category, position) VALUES (?, ?, ?, ?, ?, ?, ?)",
			card.ID, card.Term, card.Definition, card.Formula, card.Example, card.Category, i,
		)
		if err != nil {
			return err
		}
	}

	for i, q := range questions {
		_, err = tx.Exec(
			"INSERT INTO questions (id, prompt, correct_answer, explanation, position) VALUES (?, ?, ?, ?, ?)",
			q.ID, q.Prompt, q.CorrectAnswer, q.Explanation, i,
		)
		if err != nil {
			return err
		}
		for j, opt := range q.Options {
			_, err = tx.Exec(
				"INSERT INTO question_options (question_id, position, option_text) VALUES (?, ?, ?)",
				q.ID, j, opt,
			)
			if err != nil {
				return err
			}
		}
	}

	_, err = tx.Exec("INSERT INTO user_progress (id, quizzes_taken, total_quiz_score, last_quiz_score) VALUES (1, 0, 0, NULL)")
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Content
// ============================================================================

func (s *SQLiteStore) ListFlashcards(ctx context.Context) ([]flashcard.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, term, definition, formula, example, category FROM flashcards ORDER BY position",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []flashcard.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

func (s *SQLiteStore) GetFlashcard(ctx context.Context, id string) (*flashcard.Flashcard, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, term, definition, formula, example, category FROM flashcards WHERE id = ?", id,
	)
	card, err := scanFlashcard(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlashcard(row rowScanner) (*flashcard.Flashcard, error) {
	var card flashcard.Flashcard
	var formula sql.NullString
	if err := row.Scan(&card.ID, &card.Term, &card.Definition, &formula, &card.Example, &card.Category); err != nil {
		return nil, err
	}
	if formula.Valid {
		card.Formula = &formula.String
	}
	return &card, nil
}

func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, prompt, correct_answer, explanation FROM questions ORDER BY position",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []quiz.Question
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.ID, &q.Prompt, &q.CorrectAnswer, &q.Explanation); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range questions {
		opts, err := s.questionOptions(ctx, questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Options = opts
	}
	return questions, nil
}

func (s *SQLiteStore) questionOptions(ctx context.Context, questionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT option_text FROM question_options WHERE question_id = ? ORDER BY position", questionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []string
	for rows.Next() {
		var opt string
		if err := rows.Scan(&opt); err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, rows.Err()
}

// ============================================================================
// Progress
// ============================================================================

func (s *SQLiteStore) GetProgress(ctx context.Context) (*progress.Progress, error) {
	p := progress.New()
	var last sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		"SELECT quizzes_taken, total_quiz_score, last_quiz_score FROM user_progress WHERE id = 1",
	).Scan(&p.QuizzesTaken, &p.TotalQuizScore, &last)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if last.Valid {
		v := int(last.Int64)
		p.LastQuizScore = &v
	}

	rows, err := s.db.QueryContext(ctx, "SELECT card_id FROM viewed_cards ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cardID string
		if err := rows.Scan(&cardID); err != nil {
			return nil, err
		}
		p.FlashcardsViewed = append(p.FlashcardsViewed, cardID)
	}
	return p, rows.Err()
}

func (s *SQLiteStore) SaveProgress(ctx context.Context, p *progress.Progress) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var last any
	if p.LastQuizScore != nil {
		last = *p.LastQuizScore
	}
	_, err = tx.Exec(
		"UPDATE user_progress SET quizzes_taken = ?, total_quiz_score = ?, last_quiz_score = ? WHERE id = 1",
		p.QuizzesTaken, p.TotalQuizScore, last,
	)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM viewed_cards"); err != nil {
		return err
	}
	for i, cardID := range p.FlashcardsViewed {
		if _, err = tx.Exec("INSERT INTO viewed_cards (card_id, position) VALUES (?, ?)", cardID, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}
