package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizhub/quizhub-backend/internal/config"
	"github.com/quizhub/quizhub-backend/internal/model"
	"github.com/quizhub/quizhub-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// numericTolerance is the comparison slack for numeric answers.
const numericTolerance = 1e-9

// AttemptService grades quiz submissions and enforces the attempt policy
// (max attempts, cooldown between attempts).
type AttemptService struct {
	quizRepo    *repository.QuizRepository
	attemptRepo *repository.AttemptRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(quizRepo *repository.QuizRepository, attemptRepo *repository.AttemptRepository, rdb *redis.Client, log zerolog.Logger) *AttemptService {
	return &AttemptService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "attempt_service").Logger(),
	}
}

// Submit grades the player's answers against the quiz. The graded attempt is
// returned immediately; persistence and the leaderboard update happen
// asynchronously via the score queue.
func (s *AttemptService) Submit(ctx context.Context, quizID uuid.UUID, userID int, req *model.SubmitAttemptRequest) (*model.AttemptResult, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	if quiz.Status != model.QuizStatusPublished {
		return nil, ErrNotPublished
	}

	if err := s.checkEligibility(ctx, quiz, userID); err != nil {
		return nil, err
	}

	if len(req.Answers) != len(quiz.Questions) {
		return nil, ErrAnswerCountWrong
	}

	now := time.Now().UTC()
	startedAt := now
	if req.StartedAt != nil && req.StartedAt.Before(now) {
		startedAt = req.StartedAt.UTC()
	}

	result := Grade(quiz, req)
	attempt := model.QuizAttempt{
		ID:          uuid.New(),
		QuizID:      quiz.ID,
		UserID:      userID,
		Score:       result.Score,
		MaxScore:    result.MaxScore,
		Percentage:  result.Percentage,
		Passed:      result.Passed,
		StartedAt:   startedAt,
		CompletedAt: now,
	}
	result.AttemptID = attempt.ID

	if err := s.enqueueScore(ctx, attempt, quiz.Category); err != nil {
		// Degrade to synchronous persistence rather than losing the score.
		s.log.Error().Err(err).Msg("Score enqueue failed, persisting inline")
		if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
			return nil, fmt.Errorf("persist attempt: %w", err)
		}
	}

	s.log.Info().
		Str("quiz_id", quiz.ID.String()).
		Int("user_id", userID).
		Float64("score", result.Score).
		Bool("passed", result.Passed).
		Msg("Attempt graded")
	return result, nil
}

// History returns the user's recent attempts.
func (s *AttemptService) History(ctx context.Context, userID, limit int) ([]model.QuizAttempt, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.attemptRepo.ListForUser(ctx, userID, limit)
}

// checkEligibility enforces the quiz attempt policy. A zero MaxAttempts
// means unlimited; TimeBetweenAttempts is in minutes.
func (s *AttemptService) checkEligibility(ctx context.Context, quiz *model.Quiz, userID int) error {
	count, latest, err := s.attemptRepo.CountForQuiz(ctx, quiz.ID, userID)
	if err != nil {
		return fmt.Errorf("count attempts: %w", err)
	}
	if quiz.MaxAttempts > 0 && count >= quiz.MaxAttempts {
		return ErrMaxAttempts
	}
	if quiz.TimeBetweenAttempts > 0 && latest != nil {
		cooldown := time.Duration(quiz.TimeBetweenAttempts) * time.Minute
		if time.Since(*latest) < cooldown {
			return ErrAttemptCooldown
		}
	}
	return nil
}

func (s *AttemptService) enqueueScore(ctx context.Context, attempt model.QuizAttempt, category string) error {
	payload, err := json.Marshal(model.ScoreMessage{Attempt: attempt, Category: category})
	if err != nil {
		return fmt.Errorf("marshal score message: %w", err)
	}
	return s.rdb.RPush(ctx, config.WorkerKey.ScoreQueue, payload).Err()
}

// Grade scores a submission against a quiz. It is a pure function: the same
// quiz and answers always produce the same result. Essay questions cannot be
// auto-graded and are excluded from the maximum score.
func Grade(quiz *model.Quiz, req *model.SubmitAttemptRequest) *model.AttemptResult {
	var score, maxScore float64
	var correct, total int

	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if q.Type == model.QuestionTypeEssay {
			continue
		}
		total++
		maxScore += float64(q.Points)

		var answer *model.AnswerKey
		if i < len(req.Answers) {
			answer = req.Answers[i]
		}
		if gradeQuestion(q, answer, req.SelectedAnswers[i]) {
			correct++
			score += float64(q.Points)
		}
	}

	percentage := 0.0
	if maxScore > 0 {
		percentage = math.Round(score/maxScore*10000) / 100
	}

	return &model.AttemptResult{
		Score:      score,
		MaxScore:   maxScore,
		Percentage: percentage,
		Passed:     percentage >= float64(quiz.PassingScore),
		Correct:    correct,
		Total:      total,
	}
}

func gradeQuestion(q *model.Question, answer *model.AnswerKey, selected []int) bool {
	switch q.Type {
	case model.QuestionTypeMultipleChoice:
		return answer != nil && answer.Index != nil &&
			q.CorrectAnswer != nil && q.CorrectAnswer.Index != nil &&
			*answer.Index == *q.CorrectAnswer.Index

	case model.QuestionTypeMultipleSelect:
		return sameIndexSet(selected, q.CorrectAnswers)

	case model.QuestionTypeTrueFalse:
		return answer != nil && answer.Bool != nil &&
			q.CorrectAnswer != nil && q.CorrectAnswer.Bool != nil &&
			*answer.Bool == *q.CorrectAnswer.Bool

	case model.QuestionTypeFillBlank, model.QuestionTypeShortAnswer:
		return answer != nil && answer.Text != nil &&
			q.CorrectAnswer != nil && q.CorrectAnswer.Text != nil &&
			strings.EqualFold(strings.TrimSpace(*answer.Text), strings.TrimSpace(*q.CorrectAnswer.Text))

	case model.QuestionTypeNumeric:
		if answer == nil || q.CorrectAnswer == nil {
			return false
		}
		got, ok := numericValue(answer)
		if !ok {
			return false
		}
		want, ok := numericValue(q.CorrectAnswer)
		if !ok {
			return false
		}
		return math.Abs(got-want) <= numericTolerance

	case model.QuestionTypeMatching, model.QuestionTypeOrdering:
		// Options are stored in their correct arrangement; the player's
		// selection must reproduce it.
		if len(selected) != len(q.Options) {
			return false
		}
		for pos, idx := range selected {
			if idx != pos {
				return false
			}
		}
		return true
	}
	return false
}

// numericValue extracts a number from an answer key, accepting numeric text.
func numericValue(key *model.AnswerKey) (float64, bool) {
	if key.Number != nil {
		return *key.Number, true
	}
	if key.Text != nil {
		n, err := strconv.ParseFloat(strings.TrimSpace(*key.Text), 64)
		return n, err == nil
	}
	return 0, false
}

// sameIndexSet compares two index sets regardless of order or duplicates.
func sameIndexSet(a, b []int) bool {
	if len(b) == 0 {
		return false
	}
	set := make(map[int]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	want := make(map[int]struct{}, len(b))
	for _, v := range b {
		want[v] = struct{}{}
	}
	if len(set) != len(want) {
		return false
	}
	for v := range want {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
