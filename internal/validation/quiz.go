package validation

import (
	"fmt"
	"strings"

	"github.com/quizhub/quizhub-backend/internal/model"
)

// ValidateQuiz runs every quiz-level check and then validates each question
// in order. It never stops at the first failure: the result carries the
// complete error list, quiz-level errors first, then per-question errors
// grouped by ascending question index.
func ValidateQuiz(quiz *model.Quiz) Result {
	var errs []Error

	title := strings.TrimSpace(quiz.Title)
	switch {
	case title == "":
		errs = append(errs, Error{Kind: KindRequired, Field: "title", Message: "Quiz title is required."})
	case len([]rune(title)) < 3:
		errs = append(errs, Error{Kind: KindMinLength, Field: "title", Message: "Quiz title must be at least 3 characters long."})
	case len([]rune(title)) > 100:
		errs = append(errs, Error{Kind: KindMaxLength, Field: "title", Message: "Quiz title must be no more than 100 characters long."})
	}

	if strings.TrimSpace(quiz.Category) == "" {
		errs = append(errs, Error{Kind: KindRequired, Field: "category", Message: "Category is required."})
	}

	if len([]rune(quiz.Description)) > 500 {
		errs = append(errs, Error{Kind: KindMaxLength, Field: "description", Message: "Description must be no more than 500 characters long."})
	}

	if quiz.PassingScore < 0 || quiz.PassingScore > 100 {
		errs = append(errs, Error{Kind: KindRange, Field: "passing_score", Message: "Passing score must be between 0 and 100."})
	}
	if quiz.TimeLimit < 0 {
		errs = append(errs, Error{Kind: KindRange, Field: "time_limit", Message: "Time limit cannot be negative."})
	}
	if quiz.MaxAttempts < 0 {
		errs = append(errs, Error{Kind: KindRange, Field: "max_attempts", Message: "Max attempts cannot be negative."})
	}
	if quiz.TimeBetweenAttempts < 0 {
		errs = append(errs, Error{Kind: KindRange, Field: "time_between_attempts", Message: "Time between attempts cannot be negative."})
	}

	if len(quiz.Questions) == 0 {
		errs = append(errs, Error{Kind: KindQuestions, Field: "questions", Message: "A quiz must have at least one question."})
		return Result{Errors: errs}
	}

	for i := range quiz.Questions {
		errs = append(errs, ValidateQuestion(&quiz.Questions[i], i)...)
	}
	return Result{Errors: errs}
}

// ValidateQuestion checks a single question. index is the zero-based position
// in the quiz; every returned error carries it, and messages embed the
// 1-based question number for display. Errors are emitted in a fixed order:
// text, points, time limit, type-specific structure, media, hints.
func ValidateQuestion(q *model.Question, index int) []Error {
	var errs []Error
	n := index + 1
	add := func(kind Kind, field, message string) {
		idx := index
		errs = append(errs, Error{
			Kind:          kind,
			Field:         field,
			Message:       message,
			QuestionIndex: &idx,
		})
	}

	text := strings.TrimSpace(q.Question)
	switch {
	case text == "":
		add(KindRequired, "question", fmt.Sprintf("Question %d: text is required.", n))
	case len([]rune(text)) < 10:
		add(KindMinLength, "question", fmt.Sprintf("Question %d: text must be at least 10 characters long.", n))
	case len([]rune(text)) > 1000:
		add(KindMaxLength, "question", fmt.Sprintf("Question %d: text must be no more than 1000 characters long.", n))
	}

	if q.Points < 1 || q.Points > 100 {
		add(KindRange, "points", fmt.Sprintf("Question %d: points must be between 1 and 100.", n))
	}
	if q.TimeLimit < 0 {
		add(KindRange, "time_limit", fmt.Sprintf("Question %d: time limit cannot be negative.", n))
	}

	switch q.Type {
	case model.QuestionTypeMultipleChoice:
		if msg := ValidateOptions(q.Options); msg != "" {
			add(KindOptions, "options", fmt.Sprintf("Question %d: %s", n, msg))
		}
		if !hasValidOptionIndex(q.CorrectAnswer, len(q.Options)) {
			add(KindCorrectAnswer, "correct_answer", fmt.Sprintf("Question %d: a valid correct answer must be selected.", n))
		}
	case model.QuestionTypeMultipleSelect:
		if msg := ValidateOptions(q.Options); msg != "" {
			add(KindOptions, "options", fmt.Sprintf("Question %d: %s", n, msg))
		}
		if len(q.CorrectAnswers) == 0 {
			add(KindCorrectAnswer, "correct_answers", fmt.Sprintf("Question %d: at least one correct answer must be selected.", n))
		} else if !allValidIndices(q.CorrectAnswers, len(q.Options)) {
			add(KindCorrectAnswer, "correct_answers", fmt.Sprintf("Question %d: correct answers reference an invalid option.", n))
		}
	case model.QuestionTypeTrueFalse:
		// An explicit false answer is present; only a missing key fails.
		if q.CorrectAnswer == nil {
			add(KindCorrectAnswer, "correct_answer", fmt.Sprintf("Question %d: a correct answer is required.", n))
		}
	case model.QuestionTypeFillBlank, model.QuestionTypeShortAnswer,
		model.QuestionTypeEssay, model.QuestionTypeNumeric:
		if q.CorrectAnswer == nil || (q.CorrectAnswer.Text != nil && strings.TrimSpace(*q.CorrectAnswer.Text) == "") {
			add(KindCorrectAnswer, "correct_answer", fmt.Sprintf("Question %d: a correct answer is required.", n))
		}
	case model.QuestionTypeMatching, model.QuestionTypeOrdering:
		if len(q.Options) < 2 {
			add(KindOptions, "options", fmt.Sprintf("Question %d: At least 2 options are required.", n))
		}
	default:
		// Unknown types carry no structural rules yet; base checks above
		// still apply.
	}

	if q.Media != nil && q.Media.Type != "" {
		if strings.TrimSpace(q.Media.URL) == "" {
			add(KindMedia, "media", fmt.Sprintf("Question %d: media URL is required.", n))
		}
		if q.Media.Type == "image" && strings.TrimSpace(q.Media.Alt) == "" {
			add(KindMedia, "media", fmt.Sprintf("Question %d: image alt text is required.", n))
		}
	}

	if len(q.Hints) > 0 {
		for _, hint := range q.Hints {
			if strings.TrimSpace(hint) == "" {
				add(KindHints, "hints", fmt.Sprintf("Question %d: hints cannot be blank.", n))
				break
			}
		}
	}

	return errs
}

// ValidateOptions checks the option-set invariants for choice questions and
// returns the first violated one as a display message, or "" when the set is
// well formed: at least two options, every option filled, no duplicates
// after trimming and case folding.
func ValidateOptions(options []string) string {
	if len(options) < 2 {
		return "At least 2 options are required."
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return "All options must be filled."
		}
	}
	if !HasUniqueValues(options) {
		return "Duplicate options are not allowed."
	}
	return ""
}

func hasValidOptionIndex(key *model.AnswerKey, optionCount int) bool {
	return key != nil && key.Index != nil && *key.Index >= 0 && *key.Index < optionCount
}

func allValidIndices(indices []int, optionCount int) bool {
	for _, idx := range indices {
		if idx < 0 || idx >= optionCount {
			return false
		}
	}
	return true
}
