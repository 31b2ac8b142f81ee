package validation

import (
	"strings"

	"github.com/quizhub/quizhub-backend/internal/model"
)

// UserRecord is the validation view of an account. Password is the plaintext
// candidate when one is being set; leave it empty to skip the strength check
// (e.g. profile updates that keep the current password).
type UserRecord struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// ValidateUser runs every account-level check independently and returns the
// complete error list.
func ValidateUser(u UserRecord) Result {
	var errs []Error

	name := strings.TrimSpace(u.Name)
	switch {
	case name == "":
		errs = append(errs, Error{Kind: KindRequired, Field: "name", Message: "Name is required."})
	case len([]rune(name)) < 2:
		errs = append(errs, Error{Kind: KindMinLength, Field: "name", Message: "Name must be at least 2 characters long."})
	case len([]rune(name)) > 50:
		errs = append(errs, Error{Kind: KindMaxLength, Field: "name", Message: "Name must be no more than 50 characters long."})
	}

	if strings.TrimSpace(u.Email) == "" {
		errs = append(errs, Error{Kind: KindRequired, Field: "email", Message: "Email is required."})
	} else if !IsValidEmail(u.Email) {
		errs = append(errs, Error{Kind: KindEmail, Field: "email", Message: "Please enter a valid email address."})
	}

	// Password presence is the caller's concern; only strength is checked
	// when one is supplied.
	if u.Password != "" && !IsValidPassword(u.Password) {
		errs = append(errs, Error{Kind: KindPassword, Field: "password", Message: defaultMessage(KindPassword, 0)})
	}

	if u.Role != "" && u.Role != model.RoleUser && u.Role != model.RoleAdmin {
		errs = append(errs, Error{Kind: KindRole, Field: "role", Message: "Role must be either user or admin."})
	}

	return Result{Errors: errs}
}
