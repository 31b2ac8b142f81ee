package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt is one graded run of a quiz by a user.
type QuizAttempt struct {
	ID          uuid.UUID `json:"id"`
	QuizID      uuid.UUID `json:"quiz_id"`
	UserID      int       `json:"user_id"`
	Score       float64   `json:"score"`
	MaxScore    float64   `json:"max_score"`
	Percentage  float64   `json:"percentage"`
	Passed      bool      `json:"passed"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// SubmitAttemptRequest carries the player's answers, one entry per question
// in quiz order. Missing entries count as unanswered.
type SubmitAttemptRequest struct {
	Answers []*AnswerKey `json:"answers" binding:"required"`
	// SelectedAnswers holds option index sets for multiple_select, matching
	// and ordering questions, keyed by question position.
	SelectedAnswers map[int][]int `json:"selected_answers,omitempty"`
	// StartedAt is when the player opened the quiz; defaults to submission
	// time when omitted.
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// ScoreMessage is the queue payload handed to the score worker after
// grading: the attempt row to persist plus the leaderboard increment.
type ScoreMessage struct {
	Attempt  QuizAttempt `json:"attempt"`
	Category string      `json:"category"`
}

// AttemptResult is the graded outcome returned to the player.
type AttemptResult struct {
	AttemptID  uuid.UUID `json:"attempt_id"`
	Score      float64   `json:"score"`
	MaxScore   float64   `json:"max_score"`
	Percentage float64   `json:"percentage"`
	Passed     bool      `json:"passed"`
	Correct    int       `json:"correct"`
	Total      int       `json:"total"`
}

// LeaderboardEntry is one row of category or global standings.
type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	UserID int     `json:"user_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}
