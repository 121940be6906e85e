package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for a failed login. It deliberately
	// does not reveal whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrPendingApproval is returned when a login hits an unapproved account.
	ErrPendingApproval = errors.New("Account pending admin approval")
	// ErrUserNotFound is returned when a user lookup does not resolve.
	ErrUserNotFound = errors.New("User not found")
	// ErrRoomNotFound is returned when a room lookup does not resolve.
	ErrRoomNotFound = errors.New("Room not found")
	// ErrRoomFull is returned when a booking targets a room with no free beds.
	ErrRoomFull = errors.New("Room is fully occupied")
	// ErrRoomUnavailable is returned when the guarded decrement loses the race.
	ErrRoomUnavailable = errors.New("Room is no longer available")
	// ErrInvalidCard is returned when the synthetic card form fails validation.
	ErrInvalidCard = errors.New("invalid card details")
	// ErrNoActiveBooking is returned when a renewal hits a user without one.
	ErrNoActiveBooking = errors.New("No active booking to renew")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a field-level validation error.
func Validation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness violation and names the colliding field.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflict builds a uniqueness-conflict error for the given field.
func Conflict(field, message string) *ConflictError {
	return &ConflictError{Field: field, Message: message}
}

// HTTPError is a domain error mapped to a transport status and code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string { return e.Message }

// MapToHTTP maps a service error to its HTTP representation. Unknown errors
// collapse into a generic 500 so internals never leak to clients.
func MapToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: ve.Message, Code: "VALIDATION_ERROR"}
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return &HTTPError{StatusCode: http.StatusConflict, Message: ce.Message, Code: "DUPLICATE_" + codeForField(ce.Field)}
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error(), Code: "INVALID_CREDENTIALS"}
	case errors.Is(err, ErrPendingApproval):
		return &HTTPError{StatusCode: http.StatusForbidden, Message: err.Error(), Code: "PENDING_APPROVAL"}
	case errors.Is(err, ErrUserNotFound):
		return &HTTPError{StatusCode: http.StatusNotFound, Message: err.Error(), Code: "USER_NOT_FOUND"}
	case errors.Is(err, ErrRoomNotFound):
		return &HTTPError{StatusCode: http.StatusNotFound, Message: err.Error(), Code: "ROOM_NOT_FOUND"}
	case errors.Is(err, ErrRoomFull):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error(), Code: "ROOM_FULL"}
	case errors.Is(err, ErrRoomUnavailable):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error(), Code: "ROOM_UNAVAILABLE"}
	case errors.Is(err, ErrInvalidCard):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error(), Code: "INVALID_CARD"}
	case errors.Is(err, ErrNoActiveBooking):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error(), Code: "NO_ACTIVE_BOOKING"}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error", Code: "INTERNAL_ERROR"}
	}
}

func codeForField(field string) string {
	switch field {
	case "email":
		return "EMAIL"
	case "mobile":
		return "MOBILE"
	case "aadhaarNumber":
		return "AADHAAR"
	case "panCard":
		return "PAN"
	case "roomNumber":
		return "ROOM_NUMBER"
	default:
		return "FIELD"
	}
}
