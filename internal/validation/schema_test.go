package validation

import (
	"reflect"
	"testing"
)

func TestValidateFormGroupsErrorsByField(t *testing.T) {
	record := map[string]any{
		"name":     "",
		"email":    "not-an-email",
		"password": "Sup3rSecret",
	}
	result := ValidateForm(record, UserSchema)

	if result.IsValid() {
		t.Fatal("record should fail")
	}
	if _, ok := result.Errors["name"]; !ok {
		t.Error("missing errors for name")
	}
	if _, ok := result.Errors["email"]; !ok {
		t.Error("missing errors for email")
	}
	if _, ok := result.Errors["password"]; ok {
		t.Errorf("password passed its rules but has errors: %+v", result.Errors["password"])
	}

	for field, errs := range result.Errors {
		for _, e := range errs {
			if e.Field != field {
				t.Errorf("error under %q tagged with field %q", field, e.Field)
			}
		}
	}
}

func TestValidateFormMissingFieldIsNil(t *testing.T) {
	// No password key at all: required fires, strength check also fires on
	// the nil value, both in rule order.
	result := ValidateForm(map[string]any{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	}, UserSchema)

	errs, ok := result.Errors["password"]
	if !ok {
		t.Fatal("missing password field should produce errors")
	}
	if errs[0].Kind != KindRequired {
		t.Errorf("first error kind = %q, want required", errs[0].Kind)
	}
}

func TestValidateFormValidRecord(t *testing.T) {
	result := ValidateForm(map[string]any{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "Analytic1",
	}, UserSchema)
	if !result.IsValid() {
		t.Errorf("valid record rejected: %+v", result.Errors)
	}
}

func TestValidateFormIsDeterministic(t *testing.T) {
	record := map[string]any{"name": "", "email": "bad", "password": "short"}
	first := ValidateForm(record, UserSchema)
	for i := 0; i < 10; i++ {
		if got := ValidateForm(record, UserSchema); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed", i)
		}
	}
}

func TestQuizSchema(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		valid  bool
	}{
		{"valid", map[string]any{"title": "Go Basics", "category": "programming", "description": ""}, true},
		{"short title", map[string]any{"title": "ab", "category": "programming"}, false},
		{"missing category", map[string]any{"title": "Go Basics"}, false},
		{"description optional", map[string]any{"title": "Go Basics", "category": "programming"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateForm(tt.record, QuizSchema); got.IsValid() != tt.valid {
				t.Errorf("IsValid() = %v, want %v: %+v", got.IsValid(), tt.valid, got.Errors)
			}
		})
	}
}
