package service

import (
	"context"
	"fmt"

	"github.com/quizhub/quizhub-backend/internal/model"
	"github.com/quizhub/quizhub-backend/internal/repository"
	"github.com/rs/zerolog"
)

// DashboardData is the admin panel summary view.
type DashboardData struct {
	TotalUsers      int                      `json:"total_users"`
	TotalQuizzes    int                      `json:"total_quizzes"`
	TotalAttempts   int                      `json:"total_attempts"`
	QuizzesByStatus map[model.QuizStatus]int `json:"quizzes_by_status"`
	RecentPassRate  float64                  `json:"recent_pass_rate"`
}

// DashboardService assembles the admin panel summary.
type DashboardService struct {
	dashRepo *repository.DashboardRepository
	log      zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashRepo *repository.DashboardRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashRepo: dashRepo,
		log:      log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetData collects the dashboard counters in one pass.
func (s *DashboardService) GetData(ctx context.Context) (*DashboardData, error) {
	users, quizzes, attempts, err := s.dashRepo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary counts: %w", err)
	}
	byStatus, err := s.dashRepo.GetQuizStatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	passRate, err := s.dashRepo.RecentPassRate(ctx, 100)
	if err != nil {
		return nil, fmt.Errorf("pass rate: %w", err)
	}

	return &DashboardData{
		TotalUsers:      users,
		TotalQuizzes:    quizzes,
		TotalAttempts:   attempts,
		QuizzesByStatus: byStatus,
		RecentPassRate:  passRate,
	}, nil
}
