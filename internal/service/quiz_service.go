package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizhub/quizhub-backend/internal/config"
	"github.com/quizhub/quizhub-backend/internal/model"
	"github.com/quizhub/quizhub-backend/internal/repository"
	"github.com/quizhub/quizhub-backend/internal/validation"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// quizPayloadTTL bounds staleness if a cache refresh is ever missed; the
// cache is refreshed explicitly on publish and update.
const quizPayloadTTL = 24 * time.Hour

// QuizService handles quiz authoring, publishing and the player payload
// cache.
type QuizService struct {
	quizRepo *repository.QuizRepository
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizRepo *repository.QuizRepository, rdb *redis.Client, log zerolog.Logger) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		rdb:      rdb,
		log:      log.With().Str("component", "quiz_service").Logger(),
	}
}

// Create validates and stores a new draft quiz. Validation runs the full
// structural pass so the author sees every problem in one response.
func (s *QuizService) Create(ctx context.Context, authorID int, req *model.SaveQuizRequest) (*model.Quiz, error) {
	quiz := quizFromRequest(req)
	quiz.AuthorID = authorID
	quiz.Status = model.QuizStatusDraft

	if result := validation.ValidateQuiz(quiz); !result.IsValid() {
		return nil, &ValidationFailedError{Result: result}
	}

	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}
	s.log.Info().Str("quiz_id", quiz.ID.String()).Int("author_id", authorID).Msg("Quiz created")
	return quiz, nil
}

// Update validates and stores changes to a quiz owned by authorID. Published
// quizzes may be edited; their cached payload is refreshed.
func (s *QuizService) Update(ctx context.Context, id uuid.UUID, authorID int, req *model.SaveQuizRequest) (*model.Quiz, error) {
	existing, err := s.getOwned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	quiz := quizFromRequest(req)
	quiz.ID = existing.ID
	quiz.AuthorID = existing.AuthorID
	quiz.Status = existing.Status

	if result := validation.ValidateQuiz(quiz); !result.IsValid() {
		return nil, &ValidationFailedError{Result: result}
	}

	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		return nil, fmt.Errorf("update quiz: %w", err)
	}

	if quiz.Status == model.QuizStatusPublished {
		if err := s.cachePayload(ctx, quiz); err != nil {
			s.log.Warn().Err(err).Str("quiz_id", id.String()).Msg("Payload cache refresh failed")
		}
	}
	return quiz, nil
}

// Publish moves a draft quiz to published and caches its player payload.
func (s *QuizService) Publish(ctx context.Context, id uuid.UUID, authorID int) (*model.Quiz, error) {
	quiz, err := s.getOwned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}
	if quiz.Status != model.QuizStatusDraft {
		return nil, ErrNotDraft
	}

	// Re-validate on publish: drafts may have been saved in a state the
	// author still needs to fix.
	if result := validation.ValidateQuiz(quiz); !result.IsValid() {
		return nil, &ValidationFailedError{Result: result}
	}

	if err := s.quizRepo.UpdateStatus(ctx, id, model.QuizStatusPublished); err != nil {
		return nil, fmt.Errorf("publish quiz: %w", err)
	}
	quiz.Status = model.QuizStatusPublished

	if err := s.cachePayload(ctx, quiz); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", id.String()).Msg("Payload cache write failed")
	}
	s.log.Info().Str("quiz_id", id.String()).Msg("Quiz published")
	return quiz, nil
}

// Archive retires a published quiz and drops its cached payload.
func (s *QuizService) Archive(ctx context.Context, id uuid.UUID, authorID int) error {
	quiz, err := s.getOwned(ctx, id, authorID)
	if err != nil {
		return err
	}
	if quiz.Status != model.QuizStatusPublished {
		return ErrNotPublished
	}
	if err := s.quizRepo.UpdateStatus(ctx, id, model.QuizStatusArchived); err != nil {
		return fmt.Errorf("archive quiz: %w", err)
	}
	if err := s.rdb.Del(ctx, config.CacheKey.QuizPayloadKey(id.String())).Err(); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", id.String()).Msg("Payload cache delete failed")
	}
	return nil
}

// Delete removes a quiz owned by authorID.
func (s *QuizService) Delete(ctx context.Context, id uuid.UUID, authorID int) error {
	if _, err := s.getOwned(ctx, id, authorID); err != nil {
		return err
	}
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	_ = s.rdb.Del(ctx, config.CacheKey.QuizPayloadKey(id.String())).Err()
	return nil
}

// Get returns a quiz with answer keys; restricted to the author or admins by
// the handler.
func (s *QuizService) Get(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return quiz, err
}

// List returns quiz summaries, optionally filtered.
func (s *QuizService) List(ctx context.Context, status model.QuizStatus, category string, authorID int) ([]model.QuizSummary, error) {
	return s.quizRepo.List(ctx, status, category, authorID)
}

// Categories returns the distinct categories of published quizzes.
func (s *QuizService) Categories(ctx context.Context) ([]string, error) {
	return s.quizRepo.Categories(ctx)
}

// GetPayload returns the answer-key-free payload of a published quiz,
// preferring the redis cache.
func (s *QuizService) GetPayload(ctx context.Context, id uuid.UUID) (*model.QuizPayload, error) {
	key := config.CacheKey.QuizPayloadKey(id.String())
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var payload model.QuizPayload
		if err := json.Unmarshal(raw, &payload); err == nil {
			return &payload, nil
		}
		s.log.Warn().Str("quiz_id", id.String()).Msg("Corrupt payload cache entry, falling back to database")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Payload cache read failed, falling back to database")
	}

	quiz, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz.Status != model.QuizStatusPublished {
		return nil, ErrNotPublished
	}
	if err := s.cachePayload(ctx, quiz); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", id.String()).Msg("Payload cache write failed")
	}
	payload := quiz.ForPlayer()
	return &payload, nil
}

// PrewarmAllCaches loads every published quiz payload into redis. Called
// before the server accepts traffic to avoid a lazy-load thundering herd.
func (s *QuizService) PrewarmAllCaches(ctx context.Context) error {
	quizzes, err := s.quizRepo.ListPublished(ctx)
	if err != nil {
		return fmt.Errorf("list published quizzes: %w", err)
	}
	for i := range quizzes {
		if err := s.cachePayload(ctx, &quizzes[i]); err != nil {
			return fmt.Errorf("cache quiz %s: %w", quizzes[i].ID, err)
		}
	}
	s.log.Info().Int("count", len(quizzes)).Msg("Quiz payload caches prewarmed")
	return nil
}

func (s *QuizService) cachePayload(ctx context.Context, quiz *model.Quiz) error {
	payload, err := json.Marshal(quiz.ForPlayer())
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return s.rdb.Set(ctx, config.CacheKey.QuizPayloadKey(quiz.ID.String()), payload, quizPayloadTTL).Err()
}

func (s *QuizService) getOwned(ctx context.Context, id uuid.UUID, authorID int) (*model.Quiz, error) {
	quiz, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz.AuthorID != authorID {
		return nil, ErrNotAuthor
	}
	return quiz, nil
}

func quizFromRequest(req *model.SaveQuizRequest) *model.Quiz {
	return &model.Quiz{
		Title:               req.Title,
		Category:            req.Category,
		Description:         req.Description,
		PassingScore:        req.PassingScore,
		TimeLimit:           req.TimeLimit,
		MaxAttempts:         req.MaxAttempts,
		TimeBetweenAttempts: req.TimeBetweenAttempts,
		Questions:           req.Questions,
	}
}
