package models

import (
	"time"
)

// User is a tenant (or administrator) account. Email, mobile and Aadhaar
// number are unique across all users; the booking snapshot fields are zeroed
// at registration and written by the fee-payment flow.
type User struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:255" json:"name"`
	Email         string  `gorm:"uniqueIndex;size:191" json:"email"`
	Mobile        string  `gorm:"uniqueIndex;size:20" json:"mobile"`
	AadhaarNumber string  `gorm:"column:aadhaar_number;uniqueIndex;size:12" json:"aadhaarNumber"`
	PANCard       *string `gorm:"column:pan_card;uniqueIndex;size:10" json:"panCard,omitempty"`
	Password      string  `gorm:"size:255" json:"-"` // bcrypt hash, never serialized

	IsAdmin       bool `gorm:"default:false" json:"isAdmin"`
	AdminApproval bool `gorm:"default:true" json:"adminApproval"`

	// Booking snapshot. BookedRoomNo is the Room.RoomNumber string; empty
	// means no active booking.
	BookedRoomNo string     `gorm:"size:50" json:"bookedRoomNo"`
	AmountPaid   float64    `json:"amountPaid"`
	TimePeriod   int        `json:"timePeriod"` // months
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	Active       bool       `gorm:"default:false" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the trimmed view returned by register/login.
type UserSummary struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Mobile       string     `json:"mobile"`
	IsAdmin      bool       `json:"isAdmin"`
	BookedRoomNo string     `json:"bookedRoomNo"`
	AmountPaid   float64    `json:"amountPaid"`
	TimePeriod   int        `json:"timePeriod"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	Active       bool       `json:"active"`
}

// Summary builds the login/registration view of the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		Name:         u.Name,
		Email:        u.Email,
		Mobile:       u.Mobile,
		IsAdmin:      u.IsAdmin,
		BookedRoomNo: u.BookedRoomNo,
		AmountPaid:   u.AmountPaid,
		TimePeriod:   u.TimePeriod,
		CheckInDate:  u.CheckInDate,
		Active:       u.Active,
	}
}
