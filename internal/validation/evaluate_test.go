package validation

import (
	"reflect"
	"strings"
	"testing"
)

func TestEvaluateCollectsAllFailures(t *testing.T) {
	rules := []Rule{
		{Kind: KindRequired},
		{Kind: KindMinLength, Param: 5},
		{Kind: KindMaxLength, Param: 10},
	}

	result := Evaluate("", rules)
	if result.IsValid() {
		t.Fatal("empty value should fail")
	}
	// Required and min_length fail; max_length passes. No short-circuit.
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Kind != KindRequired || result.Errors[1].Kind != KindMinLength {
		t.Errorf("errors out of rule order: %+v", result.Errors)
	}
}

func TestEvaluateOrderFollowsRuleOrder(t *testing.T) {
	rules := []Rule{
		{Kind: KindMaxLength, Param: 1},
		{Kind: KindEmail},
		{Kind: KindMinLength, Param: 100},
	}
	result := Evaluate("definitely not an email", rules)

	got := make([]Kind, len(result.Errors))
	for i, e := range result.Errors {
		got[i] = e.Kind
	}
	want := []Kind{KindMaxLength, KindEmail, KindMinLength}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("error order = %v, want %v", got, want)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	rules := []Rule{
		{Kind: KindRequired},
		{Kind: KindEmail},
	}
	first := Evaluate("nope", rules)
	for i := 0; i < 10; i++ {
		if got := Evaluate("nope", rules); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %+v vs %+v", i, got, first)
		}
	}
}

func TestEvaluateMessageInterpolation(t *testing.T) {
	result := Evaluate("ab", []Rule{{Kind: KindMinLength, Param: 8}})
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}
	if !strings.Contains(result.Errors[0].Message, "8") {
		t.Errorf("message %q should embed the bound", result.Errors[0].Message)
	}
}

func TestEvaluateCustomMessageOverride(t *testing.T) {
	result := Evaluate("", []Rule{{Kind: KindRequired, Message: "Name is required."}})
	if got := result.FirstMessage(); got != "Name is required." {
		t.Errorf("FirstMessage() = %q, want override", got)
	}
}

func TestEvaluateCustomRule(t *testing.T) {
	even := Rule{
		Kind:    KindCustom,
		Message: "Must be even.",
		Check: func(v any) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		},
	}

	if got := Evaluate(4, []Rule{even}); !got.IsValid() {
		t.Errorf("4 should pass: %+v", got.Errors)
	}
	if got := Evaluate(3, []Rule{even}); got.IsValid() || got.FirstMessage() != "Must be even." {
		t.Errorf("3 should fail with custom message, got %+v", got)
	}

	// A nil Check is treated as always valid.
	if got := Evaluate(nil, []Rule{{Kind: KindCustom}}); !got.IsValid() {
		t.Errorf("nil Check should pass: %+v", got.Errors)
	}
}

func TestEvaluateErrorCarriesValue(t *testing.T) {
	result := Evaluate("bad-email", []Rule{{Kind: KindEmail}})
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}
	if result.Errors[0].Value != "bad-email" {
		t.Errorf("error value = %#v, want the offending input", result.Errors[0].Value)
	}
}

func TestEvaluatePanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown rule kind should panic")
		}
	}()
	Evaluate("x", []Rule{{Kind: Kind("no_such_rule")}})
}

func TestEmptyRuleListIsValid(t *testing.T) {
	if got := Evaluate(nil, nil); !got.IsValid() {
		t.Errorf("no rules should mean valid, got %+v", got.Errors)
	}
}
