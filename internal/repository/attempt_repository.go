package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizhub/quizhub-backend/internal/model"
)

// AttemptRepository handles graded quiz attempt persistence.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

func (r *AttemptRepository) Create(ctx context.Context, a *model.QuizAttempt) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quiz_attempts
		   (id, quiz_id, user_id, score, max_score, percentage, passed, started_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.QuizID, a.UserID, a.Score, a.MaxScore, a.Percentage, a.Passed,
		a.StartedAt, a.CompletedAt)
	return err
}

// CreateBatch inserts attempts in one round trip, used by the score worker.
func (r *AttemptRepository) CreateBatch(ctx context.Context, attempts []*model.QuizAttempt) error {
	batch := &pgx.Batch{}
	for _, a := range attempts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		batch.Queue(
			`INSERT INTO quiz_attempts
			   (id, quiz_id, user_id, score, max_score, percentage, passed, started_at, completed_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			a.ID, a.QuizID, a.UserID, a.Score, a.MaxScore, a.Percentage, a.Passed,
			a.StartedAt, a.CompletedAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range attempts {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// CountForQuiz returns how many attempts the user has made on the quiz and
// when the latest one completed.
func (r *AttemptRepository) CountForQuiz(ctx context.Context, quizID uuid.UUID, userID int) (int, *time.Time, error) {
	var count int
	var latest *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), MAX(completed_at)
		 FROM quiz_attempts WHERE quiz_id = $1 AND user_id = $2`,
		quizID, userID).Scan(&count, &latest)
	if err != nil {
		return 0, nil, err
	}
	return count, latest, nil
}

// ListForUser returns the user's attempt history, newest first.
func (r *AttemptRepository) ListForUser(ctx context.Context, userID int, limit int) ([]model.QuizAttempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, quiz_id, user_id, score, max_score, percentage, passed, started_at, completed_at
		 FROM quiz_attempts WHERE user_id = $1
		 ORDER BY completed_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []model.QuizAttempt
	for rows.Next() {
		var a model.QuizAttempt
		if err := rows.Scan(&a.ID, &a.QuizID, &a.UserID, &a.Score, &a.MaxScore,
			&a.Percentage, &a.Passed, &a.StartedAt, &a.CompletedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// GetByID returns a single attempt.
func (r *AttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.pool.QueryRow(ctx,
		`SELECT id, quiz_id, user_id, score, max_score, percentage, passed, started_at, completed_at
		 FROM quiz_attempts WHERE id = $1`, id,
	).Scan(&a.ID, &a.QuizID, &a.UserID, &a.Score, &a.MaxScore, &a.Percentage,
		&a.Passed, &a.StartedAt, &a.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
