package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeMultipleSelect QuestionType = "multiple_select"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeFillBlank      QuestionType = "fill_blank"
	QuestionTypeShortAnswer    QuestionType = "short_answer"
	QuestionTypeEssay          QuestionType = "essay"
	QuestionTypeNumeric        QuestionType = "numeric"
	QuestionTypeMatching       QuestionType = "matching"
	QuestionTypeOrdering       QuestionType = "ordering"
)

// AnswerKey is the correct answer of a question. Its JSON form depends on the
// question type: an option index for multiple choice, a boolean for
// true/false, free text for the text variants and a number for numeric
// questions. Exactly one of the fields is set after decoding. A nil
// *AnswerKey means the author has not picked an answer yet, which is distinct
// from e.g. an explicit `false`.
type AnswerKey struct {
	Index  *int
	Bool   *bool
	Text   *string
	Number *float64
}

// UnmarshalJSON decodes the answer key from whichever JSON type the payload
// carries. Integral numbers populate both Number and Index.
func (k *AnswerKey) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		k.Text = &s
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		k.Bool = &b
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("answer key: %w", err)
		}
		k.Number = &n
		if n == math.Trunc(n) {
			idx := int(n)
			k.Index = &idx
		}
	}
	return nil
}

// MarshalJSON encodes whichever representation is set.
func (k AnswerKey) MarshalJSON() ([]byte, error) {
	switch {
	case k.Text != nil:
		return json.Marshal(*k.Text)
	case k.Bool != nil:
		return json.Marshal(*k.Bool)
	case k.Index != nil:
		return json.Marshal(*k.Index)
	case k.Number != nil:
		return json.Marshal(*k.Number)
	}
	return []byte("null"), nil
}

// IndexAnswer builds an answer key pointing at an option index.
func IndexAnswer(i int) *AnswerKey {
	n := float64(i)
	return &AnswerKey{Index: &i, Number: &n}
}

// BoolAnswer builds a true/false answer key.
func BoolAnswer(b bool) *AnswerKey {
	return &AnswerKey{Bool: &b}
}

// TextAnswer builds a free-text answer key.
func TextAnswer(s string) *AnswerKey {
	return &AnswerKey{Text: &s}
}

// Media is an optional attachment shown alongside a question.
type Media struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

// Question is a single quiz question. Options are only meaningful for the
// choice, matching and ordering types; CorrectAnswers only for
// multiple_select.
type Question struct {
	Question       string       `json:"question"`
	Type           QuestionType `json:"type"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswer  *AnswerKey   `json:"correct_answer,omitempty"`
	CorrectAnswers []int        `json:"correct_answers,omitempty"`
	Points         int          `json:"points"`
	TimeLimit      int          `json:"time_limit"`
	Media          *Media       `json:"media,omitempty"`
	Hints          []string     `json:"hints,omitempty"`
}
