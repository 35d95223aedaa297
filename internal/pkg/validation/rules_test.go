package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"dr.engfield@example.edu", true},
		{"a@b.co", true},
		{"user+tag@sub.domain.org", true},
		{"  padded@example.edu  ", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@nouser.com", false},
		{"spaces in@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestValidPassword(t *testing.T) {
	// The boundary is six characters.
	assert.False(t, ValidPassword(""))
	assert.False(t, ValidPassword("abc12"))
	assert.True(t, ValidPassword("abc123"))
	assert.True(t, ValidPassword("a much longer passphrase"))
}

func TestNonEmpty(t *testing.T) {
	assert.True(t, NonEmpty("x"))
	assert.False(t, NonEmpty(""))
	assert.False(t, NonEmpty("   "))
	assert.False(t, NonEmpty("\t\n"))
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, ValidID("42"))
	assert.False(t, ValidID(""))
}

func TestNonNegative(t *testing.T) {
	zero, pos, neg := 0, 7, -1
	assert.True(t, NonNegative(nil))
	assert.True(t, NonNegative(&zero))
	assert.True(t, NonNegative(&pos))
	assert.False(t, NonNegative(&neg))
}

func TestValidYear(t *testing.T) {
	low, lo, hi, high := 1899, 1900, 2100, 2101
	assert.True(t, ValidYear(nil))
	assert.True(t, ValidYear(&lo))
	assert.True(t, ValidYear(&hi))
	assert.False(t, ValidYear(&low))
	assert.False(t, ValidYear(&high))
}
