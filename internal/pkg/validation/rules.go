package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Phone numbers: leading +, then 9 to 15 digits
	PhonePattern = `^\+\d{9,15}$`

	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Field length limits from the schema
	NameMaxLength    = 30
	AddressMaxLength = 255
	RegNumMaxLength  = 30
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Phone *regexp.Regexp
	Email *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
	Email: regexp.MustCompile(EmailPattern),
}

// NormalizeEmail lower-cases an email address for storage and uniqueness
// comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidPhone reports whether the string is a valid phone number.
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// Numeric validation for bounded integer fields (marks, ratings)
type NumericValidation struct {
	Value  int
	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	v.HasMin = true
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	v.HasMax = true
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.HasMin && v.Value < v.Min {
		return false
	}

	if v.HasMax && v.Value > v.Max {
		return false
	}

	return true
}
