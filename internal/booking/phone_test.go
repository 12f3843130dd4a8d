package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   string
	}{
		{"local format", "01012345678", "1012345678"},
		{"international with plus", "+201012345678", "1012345678"},
		{"international with spaces", "+20 101 234 5678", "1012345678"},
		{"double zero prefix", "00201012345678", "1012345678"},
		{"separators stripped", "010-1234-5678", "1012345678"},
		{"foreign number kept whole", "+971501234567", "971501234567"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeMobile(tt.mobile))
		})
	}
}

func TestSameMobile(t *testing.T) {
	assert.True(t, sameMobile("01012345678", "+20 1012345678"))
	assert.True(t, sameMobile("00201012345678", "01012345678"))
	assert.False(t, sameMobile("01012345678", "01012345679"))

	// Two empty numbers never conflict
	assert.False(t, sameMobile("", ""))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, isValidMobile("01012345678"))
	assert.True(t, isValidMobile("+20 101 234 5678"))
	assert.True(t, isValidMobile("+971 50 123 4567"))

	assert.False(t, isValidMobile(""))
	assert.False(t, isValidMobile("12345"))
	assert.False(t, isValidMobile("not-a-number"))
	assert.False(t, isValidMobile("+20123456789012345678")) // too many digits
}

func TestDetectCountryCode(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   string
	}{
		{"local number falls back", "01012345678", "EG"},
		{"egyptian international", "+201012345678", "EG"},
		{"emirati international", "+971501234567", "AE"},
		{"saudi international", "+966501234567", "SA"},
		{"british international", "+447911123456", "GB"},
		{"double zero prefix", "00971501234567", "AE"},
		{"no international prefix", "971501234567", "EG"},
		{"empty falls back", "", "EG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectCountryCode(tt.mobile, "EG"))
		})
	}
}
