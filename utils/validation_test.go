package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{phone: "+821012345678", want: true},
		{phone: "010-1234-5678", want: true},
		{phone: "(02) 1234 5678", want: true},
		{phone: "123456", want: false}, // too short
		{phone: "abc", want: false},
		{phone: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhone(tt.phone))
		})
	}
}

func TestValidateDateString(t *testing.T) {
	assert.True(t, ValidateDateString("2025-12-25"))
	assert.False(t, ValidateDateString("2025-1-5"))
	assert.False(t, ValidateDateString("25-12-2025"))
	assert.False(t, ValidateDateString("2025/12/25"))
	assert.False(t, ValidateDateString(""))
}

func TestValidateClockString(t *testing.T) {
	assert.True(t, ValidateClockString("00:00"))
	assert.True(t, ValidateClockString("14:30"))
	assert.True(t, ValidateClockString("23:59"))
	assert.False(t, ValidateClockString("24:00"))
	assert.False(t, ValidateClockString("14:60"))
	assert.False(t, ValidateClockString("9:30"))
	assert.False(t, ValidateClockString("1430"))
}
