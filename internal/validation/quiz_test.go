package validation

import (
	"strings"
	"testing"

	"github.com/quizhub/quizhub-backend/internal/model"
)

func validQuestion() model.Question {
	return model.Question{
		Question:      "What is the capital of France?",
		Type:          model.QuestionTypeMultipleChoice,
		Options:       []string{"Paris", "London", "Berlin"},
		CorrectAnswer: model.IndexAnswer(0),
		Points:        10,
	}
}

func validQuiz() *model.Quiz {
	return &model.Quiz{
		Title:        "European Capitals",
		Category:     "geography",
		PassingScore: 60,
		Questions:    []model.Question{validQuestion()},
	}
}

func TestValidateQuizAccepts(t *testing.T) {
	if result := ValidateQuiz(validQuiz()); !result.IsValid() {
		t.Errorf("valid quiz rejected: %+v", result.Errors)
	}
}

func TestValidateQuizCollectsQuizLevelErrors(t *testing.T) {
	quiz := validQuiz()
	quiz.Title = "ab"
	quiz.PassingScore = 150
	quiz.Questions = nil

	result := ValidateQuiz(quiz)
	if len(result.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %+v", len(result.Errors), result.Errors)
	}
	for _, e := range result.Errors {
		if e.QuestionIndex != nil {
			t.Errorf("quiz-level error should not carry a question index: %+v", e)
		}
	}
}

func TestValidateQuizTitleBounds(t *testing.T) {
	tests := []struct {
		name  string
		title string
		kind  Kind
	}{
		{"empty", "", KindRequired},
		{"whitespace only", "   ", KindRequired},
		{"too short", "ab", KindMinLength},
		{"too long", strings.Repeat("x", 101), KindMaxLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := validQuiz()
			quiz.Title = tt.title
			result := ValidateQuiz(quiz)
			if result.IsValid() || result.Errors[0].Kind != tt.kind {
				t.Errorf("want first error kind %q, got %+v", tt.kind, result.Errors)
			}
		})
	}

	// Boundary lengths pass.
	for _, title := range []string{"abc", strings.Repeat("x", 100)} {
		quiz := validQuiz()
		quiz.Title = title
		if result := ValidateQuiz(quiz); !result.IsValid() {
			t.Errorf("title length %d rejected: %+v", len(title), result.Errors)
		}
	}
}

func TestValidateQuizEmptyQuestionsStopsPerQuestionChecks(t *testing.T) {
	quiz := validQuiz()
	quiz.Questions = []model.Question{}
	result := ValidateQuiz(quiz)
	if len(result.Errors) != 1 || result.Errors[0].Kind != KindQuestions {
		t.Fatalf("want a single questions error, got %+v", result.Errors)
	}
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		want    string
	}{
		{"valid", []string{"a", "b"}, ""},
		{"too few", []string{"a"}, "At least 2 options are required."},
		{"none", nil, "At least 2 options are required."},
		{"blank option", []string{"a", "  "}, "All options must be filled."},
		{"duplicates", []string{"Paris", "paris"}, "Duplicate options are not allowed."},
		// Count wins over content when both are violated.
		{"single blank", []string{""}, "At least 2 options are required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateOptions(tt.options); got != tt.want {
				t.Errorf("ValidateOptions(%v) = %q, want %q", tt.options, got, tt.want)
			}
		})
	}
}

func TestValidateQuestionMultipleChoiceErrorsAreIndependent(t *testing.T) {
	q := validQuestion()
	q.Options = []string{"A", "A"}
	q.CorrectAnswer = model.IndexAnswer(5)

	errs := ValidateQuestion(&q, 0)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want independent options and answer errors: %+v", len(errs), errs)
	}
	if errs[0].Kind != KindOptions || errs[1].Kind != KindCorrectAnswer {
		t.Errorf("unexpected kinds: %+v", errs)
	}
	for _, e := range errs {
		if e.QuestionIndex == nil || *e.QuestionIndex != 0 {
			t.Errorf("error missing question index: %+v", e)
		}
	}
}

func TestValidateQuestionCorrectAnswerBounds(t *testing.T) {
	tests := []struct {
		name  string
		key   *model.AnswerKey
		valid bool
	}{
		{"first option", model.IndexAnswer(0), true},
		{"last option", model.IndexAnswer(2), true},
		{"out of range", model.IndexAnswer(3), false},
		{"negative", model.IndexAnswer(-1), false},
		{"missing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			q.CorrectAnswer = tt.key
			errs := ValidateQuestion(&q, 0)
			if (len(errs) == 0) != tt.valid {
				t.Errorf("valid = %v, want %v: %+v", len(errs) == 0, tt.valid, errs)
			}
		})
	}
}

func TestValidateQuestionTrueFalse(t *testing.T) {
	q := model.Question{
		Question: "The sky is green, true or false?",
		Type:     model.QuestionTypeTrueFalse,
		Points:   5,
	}

	// An explicit false answer is a present answer.
	q.CorrectAnswer = model.BoolAnswer(false)
	if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
		t.Errorf("false answer rejected: %+v", errs)
	}

	q.CorrectAnswer = nil
	errs := ValidateQuestion(&q, 0)
	if len(errs) != 1 || errs[0].Kind != KindCorrectAnswer {
		t.Errorf("missing answer should fail: %+v", errs)
	}
}

func TestValidateQuestionTextAnswers(t *testing.T) {
	for _, typ := range []model.QuestionType{
		model.QuestionTypeFillBlank,
		model.QuestionTypeShortAnswer,
		model.QuestionTypeEssay,
	} {
		t.Run(string(typ), func(t *testing.T) {
			q := model.Question{
				Question:      "Name the first programmer in history.",
				Type:          typ,
				Points:        5,
				CorrectAnswer: model.TextAnswer("Ada Lovelace"),
			}
			if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
				t.Errorf("valid answer rejected: %+v", errs)
			}

			q.CorrectAnswer = model.TextAnswer("   ")
			if errs := ValidateQuestion(&q, 0); len(errs) != 1 {
				t.Errorf("blank answer should fail once: %+v", errs)
			}
		})
	}
}

func TestValidateQuestionMultipleSelect(t *testing.T) {
	base := model.Question{
		Question: "Which of these are Go keywords in any version?",
		Type:     model.QuestionTypeMultipleSelect,
		Options:  []string{"func", "select", "lambda"},
		Points:   10,
	}

	q := base
	q.CorrectAnswers = []int{0, 1}
	if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
		t.Errorf("valid question rejected: %+v", errs)
	}

	q = base
	q.CorrectAnswers = nil
	if errs := ValidateQuestion(&q, 0); len(errs) != 1 || errs[0].Kind != KindCorrectAnswer {
		t.Errorf("empty answer set should fail: %+v", errs)
	}

	q = base
	q.CorrectAnswers = []int{0, 7}
	if errs := ValidateQuestion(&q, 0); len(errs) != 1 || errs[0].Kind != KindCorrectAnswer {
		t.Errorf("out-of-range index should fail: %+v", errs)
	}
}

func TestValidateQuestionTextBounds(t *testing.T) {
	q := validQuestion()
	q.Question = "too short"
	errs := ValidateQuestion(&q, 2)
	if len(errs) != 1 || errs[0].Kind != KindMinLength {
		t.Fatalf("want one min_length error, got %+v", errs)
	}
	// Messages show 1-based numbering.
	if !strings.Contains(errs[0].Message, "Question 3") {
		t.Errorf("message %q should name question 3", errs[0].Message)
	}
}

func TestValidateQuestionPointsRange(t *testing.T) {
	for _, points := range []int{0, -5, 101} {
		q := validQuestion()
		q.Points = points
		errs := ValidateQuestion(&q, 0)
		if len(errs) != 1 || errs[0].Kind != KindRange {
			t.Errorf("points %d should fail with a range error: %+v", points, errs)
		}
	}
	for _, points := range []int{1, 100} {
		q := validQuestion()
		q.Points = points
		if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
			t.Errorf("points %d rejected: %+v", points, errs)
		}
	}
}

func TestValidateQuestionMedia(t *testing.T) {
	q := validQuestion()
	q.Media = &model.Media{Type: "image", URL: "https://cdn.example.com/map.png", Alt: "Map of Europe"}
	if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
		t.Errorf("valid media rejected: %+v", errs)
	}

	q.Media = &model.Media{Type: "image"}
	errs := ValidateQuestion(&q, 0)
	if len(errs) != 2 {
		t.Errorf("image without URL and alt should produce both errors: %+v", errs)
	}

	// Audio needs no alt text.
	q.Media = &model.Media{Type: "audio", URL: "https://cdn.example.com/clip.mp3"}
	if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
		t.Errorf("audio without alt rejected: %+v", errs)
	}
}

func TestValidateQuestionHints(t *testing.T) {
	q := validQuestion()
	q.Hints = []string{"It hosts the Eiffel Tower.", "Not London."}
	if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
		t.Errorf("valid hints rejected: %+v", errs)
	}

	// One aggregate error no matter how many hints are blank.
	q.Hints = []string{"  ", "Not London.", ""}
	errs := ValidateQuestion(&q, 0)
	if len(errs) != 1 || errs[0].Kind != KindHints {
		t.Fatalf("want a single hints error, got %+v", errs)
	}
	if !strings.Contains(errs[0].Message, "hints cannot be blank") {
		t.Errorf("unexpected message %q", errs[0].Message)
	}
}

func TestValidateQuestionMatchingOrderingOptionCount(t *testing.T) {
	for _, typ := range []model.QuestionType{
		model.QuestionTypeMatching,
		model.QuestionTypeOrdering,
	} {
		t.Run(string(typ), func(t *testing.T) {
			base := model.Question{
				Question: "Arrange these historical events chronologically.",
				Type:     typ,
				Points:   10,
			}

			tests := []struct {
				name    string
				options []string
				valid   bool
			}{
				{"no options", nil, false},
				{"single option", []string{"Moon landing"}, false},
				{"two options", []string{"Moon landing", "Fall of the wall"}, true},
			}
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					q := base
					q.Options = tt.options
					errs := ValidateQuestion(&q, 0)
					if tt.valid {
						if len(errs) != 0 {
							t.Errorf("valid option set rejected: %+v", errs)
						}
						return
					}
					if len(errs) != 1 || errs[0].Kind != KindOptions {
						t.Errorf("want one options error, got %+v", errs)
					}
				})
			}
		})
	}
}

func TestValidateQuestionUnknownTypeIsPermissive(t *testing.T) {
	q := model.Question{
		Question: "A question of a shape this engine has never seen.",
		Type:     model.QuestionType("hotspot"),
		Points:   10,
	}
	if errs := ValidateQuestion(&q, 0); len(errs) != 0 {
		t.Errorf("unknown type should skip structural checks: %+v", errs)
	}
}

func TestValidateQuizPerQuestionOrdering(t *testing.T) {
	quiz := validQuiz()
	bad := validQuestion()
	bad.Points = 0
	quiz.Questions = []model.Question{validQuestion(), bad, bad}

	result := ValidateQuiz(quiz)
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %+v", len(result.Errors), result.Errors)
	}
	if *result.Errors[0].QuestionIndex != 1 || *result.Errors[1].QuestionIndex != 2 {
		t.Errorf("errors not in ascending question order: %+v", result.Errors)
	}
}
