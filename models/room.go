package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room is a bookable hostel room. Capacity is the bed count; FreeBeds is the
// number of beds currently available and must stay within [0, Capacity].
// FreeBeds defaults to Capacity when a room is created without it.
type Room struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	RoomNumber string  `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	Floor      string  `gorm:"size:10" json:"floor"`
	Rent       float64 `gorm:"column:rent" json:"roomRent"` // monthly
	Capacity   int     `gorm:"column:capacity;default:1" json:"roomCapacity"`
	FreeBeds   int     `gorm:"column:free_beds" json:"freeBeds"`

	Description string         `gorm:"type:text" json:"roomDescription"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	AC          bool           `gorm:"column:ac;default:false" json:"ac"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
