package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizhub/quizhub-backend/internal/model"
)

// QuizRepository handles quiz persistence. Questions are stored denormalized
// as a jsonb column: they are always read and written as a unit with the
// quiz, and their shape varies by question type.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	q.ID = uuid.New()
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes
		   (id, author_id, title, category, description, passing_score,
		    time_limit, max_attempts, time_between_attempts, status, questions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at`,
		q.ID, q.AuthorID, q.Title, q.Category, q.Description, q.PassingScore,
		q.TimeLimit, q.MaxAttempts, q.TimeBetweenAttempts, q.Status, questions,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
}

func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	var q model.Quiz
	var questions []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, author_id, title, category, description, passing_score,
		        time_limit, max_attempts, time_between_attempts, status,
		        questions, created_at, updated_at
		 FROM quizzes WHERE id = $1`, id,
	).Scan(&q.ID, &q.AuthorID, &q.Title, &q.Category, &q.Description,
		&q.PassingScore, &q.TimeLimit, &q.MaxAttempts, &q.TimeBetweenAttempts,
		&q.Status, &questions, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(questions, &q.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return &q, nil
}

func (r *QuizRepository) Update(ctx context.Context, q *model.Quiz) error {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes
		 SET title = $1, category = $2, description = $3, passing_score = $4,
		     time_limit = $5, max_attempts = $6, time_between_attempts = $7,
		     questions = $8, updated_at = NOW()
		 WHERE id = $9`,
		q.Title, q.Category, q.Description, q.PassingScore,
		q.TimeLimit, q.MaxAttempts, q.TimeBetweenAttempts, questions, q.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuizRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.QuizStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns quiz summaries. status and category filter when non-empty;
// authorID filters when > 0.
func (r *QuizRepository) List(ctx context.Context, status model.QuizStatus, category string, authorID int) ([]model.QuizSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, category, description, status,
		        jsonb_array_length(questions), time_limit, created_at
		 FROM quizzes
		 WHERE ($1 = '' OR status = $1)
		   AND ($2 = '' OR category = $2)
		   AND ($3 = 0 OR author_id = $3)
		 ORDER BY created_at DESC`,
		string(status), category, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.QuizSummary
	for rows.Next() {
		var s model.QuizSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Category, &s.Description,
			&s.Status, &s.QuestionCount, &s.TimeLimit, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// ListPublished returns every published quiz with questions, used to prewarm
// the redis payload cache at startup.
func (r *QuizRepository) ListPublished(ctx context.Context) ([]model.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, author_id, title, category, description, passing_score,
		        time_limit, max_attempts, time_between_attempts, status,
		        questions, created_at, updated_at
		 FROM quizzes WHERE status = $1`, model.QuizStatusPublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		var q model.Quiz
		var questions []byte
		if err := rows.Scan(&q.ID, &q.AuthorID, &q.Title, &q.Category,
			&q.Description, &q.PassingScore, &q.TimeLimit, &q.MaxAttempts,
			&q.TimeBetweenAttempts, &q.Status, &questions,
			&q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questions, &q.Questions); err != nil {
			return nil, fmt.Errorf("unmarshal questions for %s: %w", q.ID, err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// Categories returns the distinct categories of published quizzes.
func (r *QuizRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT category FROM quizzes WHERE status = $1 ORDER BY category ASC`,
		model.QuizStatusPublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
