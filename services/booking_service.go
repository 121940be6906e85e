package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel-backend/apperr"
	"hostel-backend/repository"
)

// PaymentInput carries the fee-payment form. The card fields are the
// synthetic payment form; they are validated but never charged.
type PaymentInput struct {
	Email        string
	AmountPaid   float64
	BookedRoomNo string
	TimePeriod   int // months

	CardNumber string
	CardExpiry string
	CardCVV    string
}

// BookingConfirmation is returned on a successful payment.
type BookingConfirmation struct {
	ReferenceCode string    `json:"referenceCode"`
	RoomNumber    string    `json:"roomNumber"`
	Amount        float64   `json:"amount"`
	Months        int       `json:"months"`
	CheckInDate   time.Time `json:"checkInDate"`
	Card          string    `json:"card,omitempty"` // masked, when a card was given
}

// BookingService runs the fee-payment and renewal flows.
type BookingService struct {
	store repository.BookingStore
	users repository.UserRepository
	cards *CardValidator
}

// NewBookingService creates a new booking service.
func NewBookingService(store repository.BookingStore, users repository.UserRepository) *BookingService {
	return &BookingService{store: store, users: users, cards: NewCardValidator()}
}

// PayFee books a bed: it validates the form, checks the room's price and
// availability, then reserves a bed and binds the booking to the user inside
// a single transaction. The reservation uses a guarded decrement so the last
// bed goes to exactly one of two racing requests; a failed user bind rolls
// the reservation back with it.
func (s *BookingService) PayFee(ctx context.Context, in PaymentInput) (*BookingConfirmation, error) {
	email := strings.TrimSpace(in.Email)
	roomNumber := strings.TrimSpace(in.BookedRoomNo)
	if email == "" || in.AmountPaid == 0 || roomNumber == "" || in.TimePeriod == 0 {
		return nil, apperr.Validation("", "All fields are required")
	}
	if in.TimePeriod < 1 || in.TimePeriod > 12 {
		return nil, apperr.Validation("timePeriod", "Time period must be between 1 and 12 months")
	}

	if in.CardNumber != "" || in.CardExpiry != "" || in.CardCVV != "" {
		if err := s.cards.ValidateCard(in.CardNumber, in.CardExpiry, in.CardCVV); err != nil {
			return nil, err
		}
	}

	room, err := s.store.FindRoomByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	if room.FreeBeds <= 0 {
		return nil, apperr.ErrRoomFull
	}
	expected := room.Rent * float64(in.TimePeriod)
	if in.AmountPaid < expected {
		return nil, apperr.Validation("amountPaid", "Invalid payment amount. Expected: %g", expected)
	}

	checkIn := time.Now()
	err = s.store.InTransaction(ctx, func(tx repository.BookingStore) error {
		reserved, err := tx.ReserveBed(ctx, roomNumber)
		if err != nil {
			return fmt.Errorf("reserve bed: %w", err)
		}
		if !reserved {
			return apperr.ErrRoomUnavailable
		}

		affected, err := tx.BindBooking(ctx, email, repository.BookingSnapshot{
			RoomNumber:  roomNumber,
			AmountPaid:  in.AmountPaid,
			TimePeriod:  in.TimePeriod,
			CheckInDate: checkIn,
		})
		if err != nil {
			return fmt.Errorf("bind booking: %w", err)
		}
		if affected == 0 {
			// Rolling back releases the reserved bed.
			return apperr.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	confirmation := &BookingConfirmation{
		ReferenceCode: uuid.NewString(),
		RoomNumber:    roomNumber,
		Amount:        in.AmountPaid,
		Months:        in.TimePeriod,
		CheckInDate:   checkIn,
	}
	if in.CardNumber != "" {
		confirmation.Card = s.cards.MaskCardNumber(in.CardNumber)
	}
	return confirmation, nil
}

// RenewFee re-pays for the user's already booked room: it refreshes the
// booking snapshot and check-in date without touching availability.
func (s *BookingService) RenewFee(ctx context.Context, in PaymentInput) (*BookingConfirmation, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.AmountPaid == 0 || in.TimePeriod == 0 {
		return nil, apperr.Validation("", "All fields are required")
	}
	if in.TimePeriod < 1 || in.TimePeriod > 12 {
		return nil, apperr.Validation("timePeriod", "Time period must be between 1 and 12 months")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.BookedRoomNo == "" {
		return nil, apperr.ErrNoActiveBooking
	}

	room, err := s.store.FindRoomByNumber(ctx, user.BookedRoomNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	expected := room.Rent * float64(in.TimePeriod)
	if in.AmountPaid < expected {
		return nil, apperr.Validation("amountPaid", "Invalid payment amount. Expected: %g", expected)
	}

	checkIn := time.Now()
	affected, err := s.store.BindBooking(ctx, email, repository.BookingSnapshot{
		RoomNumber:  user.BookedRoomNo,
		AmountPaid:  in.AmountPaid,
		TimePeriod:  in.TimePeriod,
		CheckInDate: checkIn,
	})
	if err != nil {
		return nil, fmt.Errorf("renew booking: %w", err)
	}
	if affected == 0 {
		return nil, apperr.ErrUserNotFound
	}

	return &BookingConfirmation{
		ReferenceCode: uuid.NewString(),
		RoomNumber:    user.BookedRoomNo,
		Amount:        in.AmountPaid,
		Months:        in.TimePeriod,
		CheckInDate:   checkIn,
	}, nil
}
