package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hostel-backend/apperr"
	"hostel-backend/models"
	"hostel-backend/repository"
)

const (
	defaultDescription = "Standard Room"
)

var defaultAmenities = []string{"Basic Amenities"}

// RoomInput carries the room-creation form. Capacity and FreeBeds are
// pointers so an omitted field can be told apart from an explicit zero.
type RoomInput struct {
	RoomNumber  string
	Floor       string
	Rent        float64
	Capacity    *int
	FreeBeds    *int
	Description string
	Amenities   []string
	AC          bool
}

// RoomService manages the room inventory.
type RoomService struct {
	rooms repository.RoomRepository
}

// NewRoomService creates a new room service.
func NewRoomService(rooms repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// List returns every room.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	return s.rooms.List(ctx)
}

// Create stores a new room. FreeBeds defaults to Capacity when absent and is
// clamped into [0, Capacity].
func (s *RoomService) Create(ctx context.Context, in RoomInput) (*models.Room, error) {
	roomNumber := strings.TrimSpace(in.RoomNumber)
	floor := strings.TrimSpace(in.Floor)
	if roomNumber == "" || floor == "" || in.Rent <= 0 {
		return nil, apperr.Validation("", "Room Number, Floor, and Rent are required")
	}

	capacity := 1
	if in.Capacity != nil && *in.Capacity > 0 {
		capacity = *in.Capacity
	}
	freeBeds := capacity
	if in.FreeBeds != nil {
		freeBeds = clamp(*in.FreeBeds, 0, capacity)
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = defaultDescription
	}
	amenities := in.Amenities
	if len(amenities) == 0 {
		amenities = defaultAmenities
	}
	amenitiesJSON, err := json.Marshal(amenities)
	if err != nil {
		return nil, fmt.Errorf("encode amenities: %w", err)
	}

	room := &models.Room{
		RoomNumber:  roomNumber,
		Floor:       floor,
		Rent:        in.Rent,
		Capacity:    capacity,
		FreeBeds:    freeBeds,
		Description: description,
		Amenities:   datatypes.JSON(amenitiesJSON),
		AC:          in.AC,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("roomNumber", fmt.Sprintf("Room Number '%s' already exists", roomNumber))
		}
		return nil, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

// Update applies a partial patch by room id, re-applying the creation
// defaulting rules: a patch that changes capacity without naming freeBeds
// resets freeBeds to the new capacity, and freeBeds is always clamped.
func (s *RoomService) Update(ctx context.Context, id uint, patch map[string]any) (*models.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	fields, err := roomPatchFields(room, patch)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return room, nil
	}

	if _, err := s.rooms.UpdateFields(ctx, id, fields); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("roomNumber", "Room Number already exists")
		}
		return nil, fmt.Errorf("update room: %w", err)
	}

	return s.rooms.FindByID(ctx, id)
}

// Delete removes a room by id.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	affected, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if affected == 0 {
		return apperr.ErrRoomNotFound
	}
	return nil
}

// roomPatchFields maps a JSON patch onto column updates against the current
// row. Protected fields are dropped.
func roomPatchFields(room *models.Room, patch map[string]any) (map[string]any, error) {
	delete(patch, "id")
	delete(patch, "created_at")
	delete(patch, "updated_at")

	fields := map[string]any{}

	if v, ok := patch["roomNumber"]; ok {
		number := strings.TrimSpace(fmt.Sprintf("%v", v))
		if number == "" {
			return nil, apperr.Validation("roomNumber", "Room Number cannot be empty")
		}
		fields["room_number"] = number
	}
	if v, ok := patch["floor"]; ok {
		fields["floor"] = strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	if v, ok := patch["roomRent"]; ok {
		rent, err := toFloat(v)
		if err != nil || rent <= 0 {
			return nil, apperr.Validation("roomRent", "Rent must be a positive number")
		}
		fields["rent"] = rent
	}
	if v, ok := patch["roomDescription"]; ok {
		fields["description"] = fmt.Sprintf("%v", v)
	}
	if v, ok := patch["ac"]; ok {
		if b, isBool := v.(bool); isBool {
			fields["ac"] = b
		}
	}
	if v, ok := patch["amenities"]; ok {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, apperr.Validation("amenities", "Amenities must be a list")
		}
		fields["amenities"] = datatypes.JSON(encoded)
	}

	capacity := room.Capacity
	capacityPatched := false
	if v, ok := patch["roomCapacity"]; ok {
		n, err := toInt(v)
		if err != nil || n <= 0 {
			return nil, apperr.Validation("roomCapacity", "Capacity must be a positive number")
		}
		capacity = n
		capacityPatched = true
		fields["capacity"] = n
	}

	if v, ok := patch["freeBeds"]; ok {
		n, err := toInt(v)
		if err != nil {
			return nil, apperr.Validation("freeBeds", "Free beds must be a number")
		}
		fields["free_beds"] = clamp(n, 0, capacity)
	} else if capacityPatched {
		fields["free_beds"] = capacity
	}

	return fields, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func isDuplicateKey(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
