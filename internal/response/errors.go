package response

// ErrCode is a typed error code for consistent API error identification.
type ErrCode string

const (
	// Authentication
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_TAKEN"
	ErrSessionActive      ErrCode = "SESSION_ALREADY_ACTIVE"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// Authorization
	ErrForbidden       ErrCode = "FORBIDDEN"
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"
	ErrNotQuizAuthor   ErrCode = "NOT_QUIZ_AUTHOR"

	// Validation
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// Resources
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// Quiz and attempts
	ErrQuizNotPublished  ErrCode = "QUIZ_NOT_PUBLISHED"
	ErrQuizNotDraft      ErrCode = "QUIZ_NOT_DRAFT"
	ErrNoQuestions       ErrCode = "NO_QUESTIONS"
	ErrMaxAttempts       ErrCode = "MAX_ATTEMPTS_REACHED"
	ErrAttemptCooldown   ErrCode = "ATTEMPT_COOLDOWN"
	ErrAnswerCountWrong  ErrCode = "ANSWER_COUNT_MISMATCH"
	ErrAttemptNotOwned   ErrCode = "ATTEMPT_NOT_OWNED"
	ErrLeaderboardEmpty  ErrCode = "LEADERBOARD_EMPTY"
	ErrCategoryNotFound  ErrCode = "CATEGORY_NOT_FOUND"
	ErrQuizAlreadyExists ErrCode = "QUIZ_ALREADY_EXISTS"

	// Rate limiting
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// Server
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// Message returns a human-readable message for a given error code.
func Message(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrEmailTaken:
		return "An account with this email already exists."
	case ErrSessionActive:
		return "You are already signed in on another device."
	case ErrSessionInvalidated:
		return "Your session has ended. Please sign in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid or expired."
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrAdminAccessOnly:
		return "This resource is restricted to administrators."
	case ErrNotQuizAuthor:
		return "You are not the author of this quiz."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "The ID format is invalid."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrConflict:
		return "The resource already exists."
	case ErrQuizNotPublished:
		return "This quiz has not been published."
	case ErrQuizNotDraft:
		return "This quiz is not in draft status."
	case ErrNoQuestions:
		return "This quiz has no questions."
	case ErrMaxAttempts:
		return "You have reached the maximum number of attempts for this quiz."
	case ErrAttemptCooldown:
		return "Please wait before attempting this quiz again."
	case ErrAnswerCountWrong:
		return "The number of answers does not match the number of questions."
	case ErrAttemptNotOwned:
		return "This attempt belongs to another user."
	case ErrLeaderboardEmpty:
		return "No scores have been recorded yet."
	case ErrCategoryNotFound:
		return "Unknown quiz category."
	case ErrQuizAlreadyExists:
		return "A quiz with this title already exists."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
