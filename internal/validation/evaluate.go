package validation

import "fmt"

// Evaluate applies rules to value in order. Every failing rule contributes
// exactly one error, in rule order; evaluation never short-circuits, so the
// caller always sees the complete failure set.
//
// An unknown rule kind panics: that is a schema bug, not user input, and must
// surface immediately rather than be swallowed as a validation error.
func Evaluate(value any, rules []Rule) Result {
	var errs []Error
	for _, rule := range rules {
		if !apply(value, rule) {
			errs = append(errs, Error{
				Kind:    rule.Kind,
				Message: rule.message(),
				Value:   value,
			})
		}
	}
	return Result{Errors: errs}
}

func apply(value any, rule Rule) bool {
	switch rule.Kind {
	case KindRequired:
		return IsRequired(value)
	case KindEmail:
		return IsValidEmail(value)
	case KindPassword:
		return IsValidPassword(value)
	case KindMinLength:
		return MinLength(value, rule.Param)
	case KindMaxLength:
		return MaxLength(value, rule.Param)
	case KindNumeric:
		return IsNumeric(value)
	case KindURL:
		return IsValidURL(value)
	case KindPhone:
		return IsValidPhone(value)
	case KindDate:
		return IsValidDate(value)
	case KindTime:
		return IsValidTime(value)
	case KindCustom:
		if rule.Check == nil {
			return true
		}
		return rule.Check(value)
	}
	panic(fmt.Sprintf("validation: unsupported rule kind %q", rule.Kind))
}
