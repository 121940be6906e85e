package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostel-backend/apperr"
)

func futureExpiry() string {
	return time.Now().AddDate(1, 0, 0).Format("01/06")
}

func TestCardValidator_ValidateCard(t *testing.T) {
	v := NewCardValidator()

	t.Run("accepts a valid card", func(t *testing.T) {
		// 4111111111111111 is the classic Luhn-valid test number.
		assert.NoError(t, v.ValidateCard("4111111111111111", futureExpiry(), "123"))
	})

	t.Run("accepts spaces and dashes in the number", func(t *testing.T) {
		assert.NoError(t, v.ValidateCard("4111-1111 1111-1111", futureExpiry(), "1234"))
	})

	tests := []struct {
		name   string
		number string
		expiry string
		cvv    string
	}{
		{"fails Luhn", "4111111111111112", "12/99", "123"},
		{"too short", "411111111111", "12/99", "123"},
		{"bad expiry format", "4111111111111111", "13/99", "123"},
		{"expired card", "4111111111111111", "01/20", "123"},
		{"bad cvv", "4111111111111111", "12/99", "12"},
		{"alpha cvv", "4111111111111111", "12/99", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.ValidateCard(tt.number, tt.expiry, tt.cvv), apperr.ErrInvalidCard)
		})
	}
}

func TestCardValidator_MaskCardNumber(t *testing.T) {
	v := NewCardValidator()
	assert.Equal(t, "****1111", v.MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "****", v.MaskCardNumber("12"))
}
