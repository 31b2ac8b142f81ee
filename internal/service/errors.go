package service

import (
	"errors"

	"github.com/quizhub/quizhub-backend/internal/validation"
)

// Common service errors.
var (
	ErrNotFound         = errors.New("not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrNotAuthor        = errors.New("not the quiz author")
	ErrNotPublished     = errors.New("quiz not published")
	ErrNotDraft         = errors.New("quiz not in draft status")
	ErrMaxAttempts      = errors.New("maximum attempts reached")
	ErrAttemptCooldown  = errors.New("attempt cooldown in effect")
	ErrAnswerCountWrong = errors.New("answer count does not match question count")
)

// ValidationFailedError carries the complete, ordered domain validation
// error list up to the handler so the client can render every problem at
// once.
type ValidationFailedError struct {
	Result validation.Result
}

func (e *ValidationFailedError) Error() string {
	return e.Result.FirstMessage()
}

// FormValidationFailedError is the per-field variant produced by schema
// validation.
type FormValidationFailedError struct {
	Result validation.FormResult
}

func (e *FormValidationFailedError) Error() string {
	return "form validation failed"
}
