package validation

import "sort"

// Schema maps a field name to its ordered rule list.
type Schema map[string][]Rule

// FormResult groups validation errors by field. Fields that passed every
// rule do not appear in the map.
type FormResult struct {
	Errors map[string][]Error `json:"errors"`
}

// IsValid reports whether no field produced an error.
func (r FormResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateForm evaluates every schema field against the record. Fields are
// iterated in sorted order so repeated runs produce identical results; a
// field missing from the record is evaluated as nil.
func ValidateForm(record map[string]any, schema Schema) FormResult {
	fields := make([]string, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errs := make(map[string][]Error)
	for _, field := range fields {
		result := Evaluate(record[field], schema[field])
		if result.IsValid() {
			continue
		}
		fieldErrs := make([]Error, len(result.Errors))
		copy(fieldErrs, result.Errors)
		for i := range fieldErrs {
			fieldErrs[i].Field = field
		}
		errs[field] = fieldErrs
	}
	return FormResult{Errors: errs}
}

// UserSchema is the shared rule set for the top-level user account fields.
// Declared once; callers must not mutate it.
var UserSchema = Schema{
	"name": {
		{Kind: KindRequired, Message: "Name is required."},
		{Kind: KindMinLength, Param: 2},
		{Kind: KindMaxLength, Param: 50},
	},
	"email": {
		{Kind: KindRequired, Message: "Email is required."},
		{Kind: KindEmail},
	},
	"password": {
		{Kind: KindRequired, Message: "Password is required."},
		{Kind: KindPassword},
	},
}

// QuizSchema is the shared rule set for the top-level quiz fields. The
// structural checks (questions, answer keys) live in ValidateQuiz.
var QuizSchema = Schema{
	"title": {
		{Kind: KindRequired, Message: "Quiz title is required."},
		{Kind: KindMinLength, Param: 3},
		{Kind: KindMaxLength, Param: 100},
	},
	"category": {
		{Kind: KindRequired, Message: "Category is required."},
	},
	"description": {
		{Kind: KindMaxLength, Param: 500},
	},
}
