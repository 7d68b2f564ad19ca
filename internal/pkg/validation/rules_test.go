package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{"+905551112233", "+123456789", "+123456789012345"}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), phone)
	}

	invalid := []string{"", "905551112233", "+12345678", "+1234567890123456", "+9055abc2233"}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), phone)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"jane.doe@example.com", "a+b@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "not-an-email", "missing@tld", "@example.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", NormalizeEmail("  Jane.Doe@Example.COM "))
}

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").WithRequired(true).Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.True(t, NewStringValidation("abc").WithMaxLength(3).Validate())
	assert.False(t, NewStringValidation("abcd").WithMaxLength(3).Validate())
	assert.False(t, NewStringValidation("a").WithMinLength(2).Validate())
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(0).WithMin(0).WithMax(100).Validate())
	assert.True(t, NewNumericValidation(100).WithMin(0).WithMax(100).Validate())
	assert.False(t, NewNumericValidation(-1).WithMin(0).WithMax(100).Validate())
	assert.False(t, NewNumericValidation(101).WithMin(0).WithMax(100).Validate())
	assert.True(t, NewNumericValidation(1).WithMin(1).WithMax(5).Validate())
	assert.False(t, NewNumericValidation(6).WithMin(1).WithMax(5).Validate())
}
