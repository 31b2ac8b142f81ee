package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizhub/quizhub-backend/internal/model"
)

// DashboardRepository aggregates the counters behind the admin panel.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (totalUsers, totalQuizzes, totalAttempts int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM quizzes),
			(SELECT COUNT(*) FROM quiz_attempts)`,
	).Scan(&totalUsers, &totalQuizzes, &totalAttempts)
	return
}

// GetQuizStatusCounts retrieves the distribution of quizzes by status.
func (r *DashboardRepository) GetQuizStatusCounts(ctx context.Context) (map[model.QuizStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM quizzes GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.QuizStatus]int)
	for rows.Next() {
		var status model.QuizStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// RecentPassRate returns the share of passed attempts over the last n
// attempts, or 0 when there are none.
func (r *DashboardRepository) RecentPassRate(ctx context.Context, n int) (float64, error) {
	var rate float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(CASE WHEN passed THEN 1.0 ELSE 0.0 END), 0)
		 FROM (SELECT passed FROM quiz_attempts ORDER BY completed_at DESC LIMIT $1) recent`,
		n).Scan(&rate)
	return rate, err
}
