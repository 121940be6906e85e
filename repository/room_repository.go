package repository

import (
	"context"

	"gorm.io/gorm"

	"hostel-backend/models"
)

// RoomRepository defines persistence operations for room inventory.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*models.Room, error)
	// UpdateFields applies a partial patch; it reports how many rows matched.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (int64, error)
	// Delete removes a room permanently; it reports how many rows matched.
	Delete(ctx context.Context, id uint) (int64, error)
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository builds a GORM-backed repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *roomRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Room{}, id)
	return res.RowsAffected, res.Error
}
