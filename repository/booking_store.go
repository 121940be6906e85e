package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostel-backend/models"
)

// BookingSnapshot is the set of booking fields written onto a user record by
// a successful fee payment.
type BookingSnapshot struct {
	RoomNumber  string
	AmountPaid  float64
	TimePeriod  int
	CheckInDate time.Time
}

// BookingStore covers the persistence surface of the fee-payment flow.
// ReserveBed and BindBooking are meant to run inside InTransaction so the
// availability decrement and the user binding commit or abort together.
type BookingStore interface {
	FindRoomByNumber(ctx context.Context, roomNumber string) (*models.Room, error)
	// ReserveBed decrements free_beds with a guard that it is still positive
	// at write time. It reports whether a row matched; false means another
	// request took the last bed first.
	ReserveBed(ctx context.Context, roomNumber string) (bool, error)
	// ReleaseBed gives a bed back, bounded by the room's capacity.
	ReleaseBed(ctx context.Context, roomNumber string) error
	// BindBooking writes the snapshot onto the user row and reports how many
	// rows matched.
	BindBooking(ctx context.Context, email string, snap BookingSnapshot) (int64, error)
	// InTransaction runs fn against a store bound to a single transaction;
	// a non-nil error from fn rolls everything back.
	InTransaction(ctx context.Context, fn func(store BookingStore) error) error
}

type bookingStore struct {
	db *gorm.DB
}

// NewBookingStore builds a GORM-backed booking store.
func NewBookingStore(db *gorm.DB) BookingStore {
	return &bookingStore{db: db}
}

func (s *bookingStore) FindRoomByNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *bookingStore) ReserveBed(ctx context.Context, roomNumber string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ? AND free_beds > 0", roomNumber).
		UpdateColumn("free_beds", gorm.Expr("free_beds - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *bookingStore) ReleaseBed(ctx context.Context, roomNumber string) error {
	return s.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ? AND free_beds < capacity", roomNumber).
		UpdateColumn("free_beds", gorm.Expr("free_beds + 1")).Error
}

func (s *bookingStore) BindBooking(ctx context.Context, email string, snap BookingSnapshot) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"booked_room_no": snap.RoomNumber,
			"amount_paid":    snap.AmountPaid,
			"time_period":    snap.TimePeriod,
			"check_in_date":  snap.CheckInDate,
			"active":         true,
		})
	return res.RowsAffected, res.Error
}

func (s *bookingStore) InTransaction(ctx context.Context, fn func(store BookingStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookingStore{db: tx})
	})
}
