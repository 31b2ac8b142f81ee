package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizStatus enumerates the lifecycle states of a quiz.
type QuizStatus string

const (
	QuizStatusDraft     QuizStatus = "DRAFT"
	QuizStatusPublished QuizStatus = "PUBLISHED"
	QuizStatusArchived  QuizStatus = "ARCHIVED"
)

// Quiz is a quiz entity as authored. Questions are stored denormalized with
// the quiz and stripped of answer keys before being served to players.
type Quiz struct {
	ID                  uuid.UUID  `json:"id"`
	AuthorID            int        `json:"author_id"`
	Title               string     `json:"title"`
	Category            string     `json:"category"`
	Description         string     `json:"description,omitempty"`
	PassingScore        int        `json:"passing_score"`
	TimeLimit           int        `json:"time_limit"`
	MaxAttempts         int        `json:"max_attempts"`
	TimeBetweenAttempts int        `json:"time_between_attempts"`
	Status              QuizStatus `json:"status"`
	Questions           []Question `json:"questions"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// SaveQuizRequest is the payload for creating or updating a quiz. Binding
// tags reject only structurally broken payloads; the semantic checks
// (question structure, answer keys, bounds) run in internal/validation so the
// client receives the complete error list at once.
type SaveQuizRequest struct {
	Title               string     `json:"title" binding:"required"`
	Category            string     `json:"category" binding:"required"`
	Description         string     `json:"description" binding:"omitempty"`
	PassingScore        int        `json:"passing_score"`
	TimeLimit           int        `json:"time_limit"`
	MaxAttempts         int        `json:"max_attempts"`
	TimeBetweenAttempts int        `json:"time_between_attempts"`
	Questions           []Question `json:"questions"`
}

// QuizSummary is the listing view without question bodies.
type QuizSummary struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Description   string     `json:"description,omitempty"`
	Status        QuizStatus `json:"status"`
	QuestionCount int        `json:"question_count"`
	TimeLimit     int        `json:"time_limit"`
	CreatedAt     time.Time  `json:"created_at"`
}

// QuizPayload is the redis-cached payload served to players. Everything the
// client needs to render the quiz is preserved; only the answer keys are
// stripped.
type QuizPayload struct {
	QuizID    uuid.UUID           `json:"quiz_id"`
	Title     string              `json:"title"`
	Category  string              `json:"category"`
	TimeLimit int                 `json:"time_limit"`
	Questions []QuestionForPlayer `json:"questions"`
}

// QuestionForPlayer is a question without its answer key.
type QuestionForPlayer struct {
	Question  string       `json:"question"`
	Type      QuestionType `json:"type"`
	Options   []string     `json:"options,omitempty"`
	Points    int          `json:"points"`
	TimeLimit int          `json:"time_limit"`
	Media     *Media       `json:"media,omitempty"`
	Hints     []string     `json:"hints,omitempty"`
}

// ForPlayer strips answer keys from the quiz for delivery to players.
func (q *Quiz) ForPlayer() QuizPayload {
	questions := make([]QuestionForPlayer, 0, len(q.Questions))
	for _, qn := range q.Questions {
		questions = append(questions, QuestionForPlayer{
			Question:  qn.Question,
			Type:      qn.Type,
			Options:   qn.Options,
			Points:    qn.Points,
			TimeLimit: qn.TimeLimit,
			Media:     qn.Media,
			Hints:     qn.Hints,
		})
	}
	return QuizPayload{
		QuizID:    q.ID,
		Title:     q.Title,
		Category:  q.Category,
		TimeLimit: q.TimeLimit,
		Questions: questions,
	}
}
