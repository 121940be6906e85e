package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hostel-backend/apperr"
)

var (
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
	cardDigitsOnly    = regexp.MustCompile(`\D`)
)

// CardValidator validates the synthetic card form of the payment screen.
// Nothing is charged; the booking flow only checks that the details are
// well-formed before taking the payment amount at face value.
type CardValidator struct{}

// NewCardValidator creates a new card validator.
func NewCardValidator() *CardValidator {
	return &CardValidator{}
}

// ValidateCard validates card number, expiry, and CVV.
func (v *CardValidator) ValidateCard(cardNumber, expiry, cvv string) error {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")

	if !v.validateLuhn(cardNumber) {
		return apperr.ErrInvalidCard
	}
	if !cardExpiryPattern.MatchString(expiry) {
		return apperr.ErrInvalidCard
	}
	if !v.validateExpiry(expiry) {
		return apperr.ErrInvalidCard
	}
	if !cardCVVPattern.MatchString(cvv) {
		return apperr.ErrInvalidCard
	}
	return nil
}

// validateLuhn validates a card number using the Luhn algorithm.
func (v *CardValidator) validateLuhn(cardNumber string) bool {
	cardNumber = cardDigitsOnly.ReplaceAllString(cardNumber, "")

	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return false
	}

	sum := 0
	isEven := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		digit, err := strconv.Atoi(string(cardNumber[i]))
		if err != nil {
			return false
		}
		if isEven {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		isEven = !isEven
	}
	return sum%10 == 0
}

// validateExpiry validates that the MM/YY expiry is not in the past.
func (v *CardValidator) validateExpiry(expiry string) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if year < 100 {
		year += 2000
	}

	expiryDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return expiryDate.After(time.Now().AddDate(0, -1, 0))
}

// MaskCardNumber masks a card number, showing only the last 4 digits.
func (v *CardValidator) MaskCardNumber(cardNumber string) string {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
