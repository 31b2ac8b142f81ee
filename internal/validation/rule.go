// Package validation is the domain validation engine: primitive predicates,
// an ordered rule evaluator, whole-form schema validation and the structural
// validators for quizzes and user accounts. Everything in this package is a
// pure function over plain data; it performs no I/O and holds no state, so it
// is safe to call from handlers and services concurrently.
package validation

import "fmt"

// Kind names a validation rule. Beyond the primitive rules, the structural
// validators tag their errors with domain kinds such as KindOptions.
type Kind string

const (
	KindRequired  Kind = "required"
	KindEmail     Kind = "email"
	KindPassword  Kind = "password"
	KindMinLength Kind = "min_length"
	KindMaxLength Kind = "max_length"
	KindNumeric   Kind = "numeric"
	KindURL       Kind = "url"
	KindPhone     Kind = "phone"
	KindDate      Kind = "date"
	KindTime      Kind = "time"
	KindCustom    Kind = "custom"

	// Domain kinds used by the quiz and user structural validators.
	KindRange         Kind = "range"
	KindOptions       Kind = "options"
	KindCorrectAnswer Kind = "correct_answer"
	KindMedia         Kind = "media"
	KindHints         Kind = "hints"
	KindRole          Kind = "role"
	KindQuestions     Kind = "questions"
)

// Rule is one named check bound to a value at evaluation time. Rules are
// declared once per schema and treated as immutable configuration.
type Rule struct {
	Kind Kind

	// Param is the bound for the length rules.
	Param int

	// Check is the predicate for KindCustom rules. A nil Check is treated as
	// always valid.
	Check func(value any) bool

	// Message overrides the default message for the kind.
	Message string
}

// message resolves the rule's error message, falling back to the kind's
// default template.
func (r Rule) message() string {
	if r.Message != "" {
		return r.Message
	}
	return defaultMessage(r.Kind, r.Param)
}

func defaultMessage(kind Kind, param int) string {
	switch kind {
	case KindRequired:
		return "This field is required."
	case KindEmail:
		return "Please enter a valid email address."
	case KindPassword:
		return "Password must be at least 8 characters with uppercase, lowercase, and a number."
	case KindMinLength:
		return fmt.Sprintf("Must be at least %d characters long.", param)
	case KindMaxLength:
		return fmt.Sprintf("Must be no more than %d characters long.", param)
	case KindNumeric:
		return "Must be a valid number."
	case KindURL:
		return "Please enter a valid URL."
	case KindPhone:
		return "Please enter a valid phone number."
	case KindDate:
		return "Please enter a valid date."
	case KindTime:
		return "Please enter a valid time (HH:MM)."
	case KindCustom:
		return "Invalid value."
	}
	return "Invalid value."
}

// Error is a single validation failure. QuestionIndex is set only on errors
// produced by the per-question structural checks.
type Error struct {
	Kind          Kind   `json:"kind"`
	Field         string `json:"field,omitempty"`
	Message       string `json:"message"`
	Value         any    `json:"value,omitempty"`
	QuestionIndex *int   `json:"question_index,omitempty"`
}

// Result is an ordered list of validation failures. Validity is derived from
// the error list rather than stored, so the two can never disagree.
type Result struct {
	Errors []Error `json:"errors"`
}

// IsValid reports whether the validated value passed every rule.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// FirstMessage returns the first error message, or "" for a valid result.
// Callers typically surface it as a notification while rendering the full
// list inline.
func (r Result) FirstMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}
