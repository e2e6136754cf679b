// Package validation collects field violations as message codes; the i18n
// layer turns codes into user-facing text at render time.
package validation

import (
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

func Email(field, value string, v Violations) {
	if value == "" {
		return
	}
	if !emailRe.MatchString(value) {
		v[field] = "invalid_email"
	}
}

// Phone accepts 8 to 15 digits, with an optional leading + and spaces,
// dots or dashes as separators.
func Phone(field, value string, v Violations) {
	if value == "" {
		return
	}
	digits := 0
	for i, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '.' || r == '-':
		default:
			v[field] = "invalid_phone"
			return
		}
	}
	if digits < 8 || digits > 15 {
		v[field] = "invalid_phone"
	}
}

func MinLen(field, value string, n int, v Violations) {
	if value != "" && len(value) < n {
		v[field] = "too_short"
	}
}

// FieldsMatch flags the second field when the two values differ, the shape
// used for password confirmation.
func FieldsMatch(field string, a, b string, v Violations) {
	if a != b {
		v[field] = "fields_mismatch"
	}
}
