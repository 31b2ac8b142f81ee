package validation

import (
	"strings"
	"testing"

	"github.com/quizhub/quizhub-backend/internal/model"
)

func TestValidateUser(t *testing.T) {
	valid := UserRecord{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "Analytic1",
		Role:     model.RoleUser,
	}

	tests := []struct {
		name   string
		mutate func(*UserRecord)
		kinds  []Kind
	}{
		{"valid", func(u *UserRecord) {}, nil},
		{"empty name", func(u *UserRecord) { u.Name = " " }, []Kind{KindRequired}},
		{"short name", func(u *UserRecord) { u.Name = "A" }, []Kind{KindMinLength}},
		{"long name", func(u *UserRecord) { u.Name = strings.Repeat("x", 51) }, []Kind{KindMaxLength}},
		{"bad email", func(u *UserRecord) { u.Email = "nope" }, []Kind{KindEmail}},
		{"missing email", func(u *UserRecord) { u.Email = "" }, []Kind{KindRequired}},
		{"weak password", func(u *UserRecord) { u.Password = "weak" }, []Kind{KindPassword}},
		{"empty password skips strength", func(u *UserRecord) { u.Password = "" }, nil},
		{"bad role", func(u *UserRecord) { u.Role = model.Role("root") }, []Kind{KindRole}},
		{"empty role allowed", func(u *UserRecord) { u.Role = "" }, nil},
		{"admin role allowed", func(u *UserRecord) { u.Role = model.RoleAdmin }, nil},
		{
			"errors accumulate",
			func(u *UserRecord) { u.Name = ""; u.Email = "nope"; u.Password = "weak" },
			[]Kind{KindRequired, KindEmail, KindPassword},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			result := ValidateUser(u)
			if len(result.Errors) != len(tt.kinds) {
				t.Fatalf("got %d errors, want %d: %+v", len(result.Errors), len(tt.kinds), result.Errors)
			}
			for i, kind := range tt.kinds {
				if result.Errors[i].Kind != kind {
					t.Errorf("error %d kind = %q, want %q", i, result.Errors[i].Kind, kind)
				}
			}
		})
	}
}
