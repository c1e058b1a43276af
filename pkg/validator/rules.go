package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex       = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	codeRegex        = regexp.MustCompile(`^[0-9]{6}$`)
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

// Email validates the local@domain.tld shape: word characters, dots and
// hyphens on both sides of the @, at least one dot in the domain.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// Code validates that a value is exactly six ASCII digits.
func Code(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return codeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a 6-digit code",
		},
	}
}

// MinLen validates minimum string length in bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", min),
		},
	}
}

// PasswordDigit validates that a password contains at least one digit.
func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one digit",
		},
	}
}

// PasswordSpecialChar validates that a password contains at least one
// character from the fixed punctuation set.
func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return specialCharRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one special character",
		},
	}
}

// PasswordUppercase validates that a password contains an uppercase letter.
func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one uppercase letter",
		},
	}
}

// PasswordLowercase validates that a password contains a lowercase letter.
func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one lowercase letter",
		},
	}
}

// StrongPassword returns the password policy rules in reporting priority
// order: length, digit, special character, uppercase, lowercase. Run them
// through First so only the highest-priority unmet rule is reported.
func StrongPassword(field, value string) []Rule {
	return []Rule{
		MinLen(field, value, 8),
		PasswordDigit(field, value),
		PasswordSpecialChar(field, value),
		PasswordUppercase(field, value),
		PasswordLowercase(field, value),
	}
}
