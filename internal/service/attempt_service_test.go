package service

import (
	"testing"

	"github.com/quizhub/quizhub-backend/internal/model"
)

func gradableQuiz() *model.Quiz {
	return &model.Quiz{
		PassingScore: 60,
		Questions: []model.Question{
			{
				Question:      "Which planet is known as the red planet?",
				Type:          model.QuestionTypeMultipleChoice,
				Options:       []string{"Mars", "Venus", "Jupiter"},
				CorrectAnswer: model.IndexAnswer(0),
				Points:        10,
			},
			{
				Question:      "Is water composed of hydrogen and oxygen?",
				Type:          model.QuestionTypeTrueFalse,
				CorrectAnswer: model.BoolAnswer(true),
				Points:        10,
			},
			{
				Question:      "The powerhouse of the cell is the ____.",
				Type:          model.QuestionTypeFillBlank,
				CorrectAnswer: model.TextAnswer("Mitochondria"),
				Points:        10,
			},
		},
	}
}

func TestGradeAllCorrect(t *testing.T) {
	quiz := gradableQuiz()
	req := &model.SubmitAttemptRequest{
		Answers: []*model.AnswerKey{
			model.IndexAnswer(0),
			model.BoolAnswer(true),
			model.TextAnswer("  mitochondria "),
		},
	}

	result := Grade(quiz, req)
	if result.Score != 30 || result.MaxScore != 30 {
		t.Errorf("score = %v/%v, want 30/30", result.Score, result.MaxScore)
	}
	if result.Percentage != 100 || !result.Passed {
		t.Errorf("percentage = %v passed = %v, want 100 true", result.Percentage, result.Passed)
	}
	if result.Correct != 3 || result.Total != 3 {
		t.Errorf("correct/total = %d/%d, want 3/3", result.Correct, result.Total)
	}
}

func TestGradePartialAndFail(t *testing.T) {
	quiz := gradableQuiz()
	req := &model.SubmitAttemptRequest{
		Answers: []*model.AnswerKey{
			model.IndexAnswer(1),       // wrong
			model.BoolAnswer(true),     // right
			model.TextAnswer("ribosome"), // wrong
		},
	}

	result := Grade(quiz, req)
	if result.Score != 10 {
		t.Errorf("score = %v, want 10", result.Score)
	}
	if result.Percentage != 33.33 {
		t.Errorf("percentage = %v, want 33.33", result.Percentage)
	}
	if result.Passed {
		t.Error("33.33%% should not pass a 60%% bar")
	}
}

func TestGradeMissingAnswersScoreZero(t *testing.T) {
	quiz := gradableQuiz()
	req := &model.SubmitAttemptRequest{
		Answers: []*model.AnswerKey{nil, nil, nil},
	}

	result := Grade(quiz, req)
	if result.Score != 0 || result.Correct != 0 {
		t.Errorf("unanswered submission scored %v with %d correct", result.Score, result.Correct)
	}
	if result.Passed && quiz.PassingScore > 0 {
		t.Error("zero score should not pass")
	}
}

func TestGradeEssayExcludedFromMaxScore(t *testing.T) {
	quiz := gradableQuiz()
	quiz.Questions = append(quiz.Questions, model.Question{
		Question:      "Explain photosynthesis in your own words.",
		Type:          model.QuestionTypeEssay,
		CorrectAnswer: model.TextAnswer("n/a"),
		Points:        50,
	})
	req := &model.SubmitAttemptRequest{
		Answers: []*model.AnswerKey{
			model.IndexAnswer(0),
			model.BoolAnswer(true),
			model.TextAnswer("mitochondria"),
			model.TextAnswer("a long essay"),
		},
	}

	result := Grade(quiz, req)
	if result.MaxScore != 30 {
		t.Errorf("max score = %v, essay points should be excluded", result.MaxScore)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, essay should not count", result.Total)
	}
	if result.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", result.Percentage)
	}
}

func TestGradeNumericTolerance(t *testing.T) {
	third := 1.0 / 3.0
	quiz := &model.Quiz{
		PassingScore: 50,
		Questions: []model.Question{{
			Question:      "What is one divided by three, approximately?",
			Type:          model.QuestionTypeNumeric,
			CorrectAnswer: &model.AnswerKey{Number: &third},
			Points:        10,
		}},
	}

	almost := third + 1e-12
	req := &model.SubmitAttemptRequest{Answers: []*model.AnswerKey{{Number: &almost}}}
	if result := Grade(quiz, req); result.Score != 10 {
		t.Errorf("answer within tolerance scored %v", result.Score)
	}

	off := third + 0.01
	req = &model.SubmitAttemptRequest{Answers: []*model.AnswerKey{{Number: &off}}}
	if result := Grade(quiz, req); result.Score != 0 {
		t.Errorf("answer outside tolerance scored %v", result.Score)
	}

	// Numeric text is accepted but still subject to the tolerance.
	req = &model.SubmitAttemptRequest{Answers: []*model.AnswerKey{model.TextAnswer("0.3333")}}
	if result := Grade(quiz, req); result.Score != 0 {
		t.Errorf("text outside tolerance scored %v", result.Score)
	}
}

func TestGradeMultipleSelect(t *testing.T) {
	quiz := &model.Quiz{
		PassingScore: 50,
		Questions: []model.Question{{
			Question:       "Select every prime number shown below.",
			Type:           model.QuestionTypeMultipleSelect,
			Options:        []string{"2", "3", "4", "5"},
			CorrectAnswers: []int{0, 1, 3},
			Points:         10,
		}},
	}

	tests := []struct {
		name     string
		selected []int
		want     float64
	}{
		{"exact set", []int{0, 1, 3}, 10},
		{"order irrelevant", []int{3, 0, 1}, 10},
		{"duplicates collapse", []int{0, 0, 1, 3}, 10},
		{"missing one", []int{0, 1}, 0},
		{"extra one", []int{0, 1, 2, 3}, 0},
		{"none selected", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &model.SubmitAttemptRequest{
				Answers:         []*model.AnswerKey{nil},
				SelectedAnswers: map[int][]int{0: tt.selected},
			}
			if result := Grade(quiz, req); result.Score != tt.want {
				t.Errorf("score = %v, want %v", result.Score, tt.want)
			}
		})
	}
}

func TestGradeOrdering(t *testing.T) {
	quiz := &model.Quiz{
		PassingScore: 50,
		Questions: []model.Question{{
			Question: "Arrange these historical events chronologically.",
			Type:     model.QuestionTypeOrdering,
			Options:  []string{"first", "second", "third"},
			Points:   10,
		}},
	}

	tests := []struct {
		name     string
		selected []int
		want     float64
	}{
		{"correct order", []int{0, 1, 2}, 10},
		{"swapped", []int{1, 0, 2}, 0},
		{"short", []int{0, 1}, 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &model.SubmitAttemptRequest{
				Answers:         []*model.AnswerKey{nil},
				SelectedAnswers: map[int][]int{0: tt.selected},
			}
			if result := Grade(quiz, req); result.Score != tt.want {
				t.Errorf("score = %v, want %v", result.Score, tt.want)
			}
		})
	}
}

func TestGradeEmptyQuizHasZeroPercentage(t *testing.T) {
	quiz := &model.Quiz{PassingScore: 0, Questions: nil}
	result := Grade(quiz, &model.SubmitAttemptRequest{})
	if result.Percentage != 0 {
		t.Errorf("percentage = %v, want 0", result.Percentage)
	}
	// A zero passing score still passes on an empty gradable set.
	if !result.Passed {
		t.Error("0%% >= 0%% should pass")
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	quiz := gradableQuiz()
	req := &model.SubmitAttemptRequest{
		Answers: []*model.AnswerKey{
			model.IndexAnswer(0),
			model.BoolAnswer(false),
			model.TextAnswer("mitochondria"),
		},
	}
	first := Grade(quiz, req)
	for i := 0; i < 10; i++ {
		got := Grade(quiz, req)
		if *got != *first {
			t.Fatalf("run %d differed: %+v vs %+v", i, got, first)
		}
	}
}
