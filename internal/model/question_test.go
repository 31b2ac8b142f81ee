package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAnswerKeyUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, k *AnswerKey)
	}{
		{
			"option index", `2`,
			func(t *testing.T, k *AnswerKey) {
				if k.Index == nil || *k.Index != 2 {
					t.Errorf("Index = %v, want 2", k.Index)
				}
				if k.Number == nil || *k.Number != 2 {
					t.Errorf("Number = %v, want 2", k.Number)
				}
			},
		},
		{
			"explicit false", `false`,
			func(t *testing.T, k *AnswerKey) {
				if k.Bool == nil || *k.Bool != false {
					t.Errorf("Bool = %v, want false", k.Bool)
				}
				if k.Index != nil || k.Text != nil || k.Number != nil {
					t.Errorf("other fields should be nil: %+v", k)
				}
			},
		},
		{
			"free text", `"Ada Lovelace"`,
			func(t *testing.T, k *AnswerKey) {
				if k.Text == nil || *k.Text != "Ada Lovelace" {
					t.Errorf("Text = %v, want Ada Lovelace", k.Text)
				}
			},
		},
		{
			"fractional number has no index", `3.5`,
			func(t *testing.T, k *AnswerKey) {
				if k.Number == nil || *k.Number != 3.5 {
					t.Errorf("Number = %v, want 3.5", k.Number)
				}
				if k.Index != nil {
					t.Errorf("Index should be nil for 3.5, got %v", *k.Index)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k AnswerKey
			if err := json.Unmarshal([]byte(tt.raw), &k); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.raw, err)
			}
			tt.check(t, &k)
		})
	}
}

func TestAnswerKeyNullStaysNilInQuestion(t *testing.T) {
	// A null or absent key must stay nil so "no answer picked" remains
	// distinct from an explicit false.
	for _, raw := range []string{
		`{"question":"Is the sky blue on a clear day?","type":"true_false","points":5,"correct_answer":null}`,
		`{"question":"Is the sky blue on a clear day?","type":"true_false","points":5}`,
	} {
		var q Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			t.Fatal(err)
		}
		if q.CorrectAnswer != nil {
			t.Errorf("answer decoded into %+v, want nil", q.CorrectAnswer)
		}
	}
}

func TestAnswerKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		key  *AnswerKey
		want string
	}{
		{"index", IndexAnswer(1), `1`},
		{"bool", BoolAnswer(false), `false`},
		{"text", TextAnswer("mitochondria"), `"mitochondria"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestQuizForPlayerStripsAnswers(t *testing.T) {
	quiz := &Quiz{
		Title: "Biology Basics",
		Questions: []Question{
			{
				Question:      "Which organelle produces ATP in eukaryotic cells?",
				Type:          QuestionTypeMultipleChoice,
				Options:       []string{"Mitochondria", "Ribosome"},
				CorrectAnswer: IndexAnswer(0),
				Points:        10,
				Hints:         []string{"It has its own DNA."},
			},
			{
				Question:       "Select every RNA type below.",
				Type:           QuestionTypeMultipleSelect,
				Options:        []string{"mRNA", "tRNA", "DNA"},
				CorrectAnswers: []int{0, 1},
				Points:         10,
			},
		},
	}

	payload := quiz.ForPlayer()
	if len(payload.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(payload.Questions))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	for _, leak := range []string{`"correct_answer"`, `"correct_answers"`} {
		if strings.Contains(string(raw), leak) {
			t.Errorf("player payload leaks %s: %s", leak, raw)
		}
	}
	// Hints and options survive.
	if !strings.Contains(string(raw), `"options"`) || !strings.Contains(string(raw), `"hints"`) {
		t.Errorf("player payload missing display fields: %s", raw)
	}
}
