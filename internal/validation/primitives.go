package validation

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9-]+(\.[a-z0-9-]+)*\.[a-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	timePattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// dateLayouts are the formats accepted by IsValidDate, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// IsRequired reports whether a value is present. Only nil, blank strings and
// empty sequences count as absent; the number 0 and the boolean false are
// legitimate present values.
func IsRequired(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return IsRequired(rv.Elem().Interface())
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

// IsValidEmail reports whether the value is a well-formed email address. The
// match is case-insensitive and anchored; the final domain label must be at
// least two letters.
func IsValidEmail(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsValidPassword enforces the password policy: at least 8 characters with
// one lowercase letter, one uppercase letter and one digit, drawn from
// letters, digits and @$!%*?&.
func IsValidPassword(value any) bool {
	s, ok := value.(string)
	if !ok || len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			// allowed special
		default:
			return false
		}
	}
	return lower && upper && digit
}

// MinLength reports whether the stringified value has at least min characters.
func MinLength(value any, min int) bool {
	return len([]rune(stringify(value))) >= min
}

// MaxLength reports whether the stringified value has at most max characters.
func MaxLength(value any, max int) bool {
	return len([]rune(stringify(value))) <= max
}

// IsNumeric reports whether the value is, or parses to, a finite number.
func IsNumeric(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && !math.IsNaN(n) && !math.IsInf(n, 0)
	}
	return false
}

// IsValidURL reports whether the value is an absolute http(s) URL with a
// host. Other schemes are rejected.
func IsValidURL(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// IsValidPhone reports whether the value is a phone number: after stripping
// whitespace, hyphens and parentheses, an optional + followed by 1-16 digits
// with no leading zero.
func IsValidPhone(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')':
			return -1
		}
		return r
	}, s)
	return phonePattern.MatchString(s)
}

// IsValidDate reports whether the value parses to a valid calendar date.
func IsValidDate(value any) bool {
	switch v := value.(type) {
	case time.Time:
		return !v.IsZero()
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
	}
	return false
}

// IsValidTime reports whether the value is a wall-clock time in HH:MM form.
func IsValidTime(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return timePattern.MatchString(s)
}

// HasUniqueValues reports whether all values are distinct after trimming and
// case folding.
func HasUniqueValues(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return len(seen) == len(values)
}

// stringify renders a value for the length checks. A nil value stringifies
// to the empty string.
func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
