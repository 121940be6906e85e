package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

// RoomAdminUsecase is the room-management slice of the room service.
type RoomAdminUsecase interface {
	List(ctx context.Context) ([]models.Room, error)
	Create(ctx context.Context, in services.RoomInput) (*models.Room, error)
	Update(ctx context.Context, id uint, patch map[string]any) (*models.Room, error)
	Delete(ctx context.Context, id uint) error
}

// UserAdminUsecase is the user-management slice of the user service.
type UserAdminUsecase interface {
	ListTenants(ctx context.Context) ([]models.User, error)
	AdminUpdate(ctx context.Context, id uint, patch map[string]any) (*models.User, error)
	AdminDelete(ctx context.Context, id uint) error
}

// AdminController serves the /admin room and user management surface.
type AdminController struct {
	rooms RoomAdminUsecase
	users UserAdminUsecase
}

// NewAdminController creates a new admin controller.
func NewAdminController(rooms RoomAdminUsecase, users UserAdminUsecase) *AdminController {
	return &AdminController{rooms: rooms, users: users}
}

type createRoomRequest struct {
	RoomNumber  string   `json:"roomNumber"`
	Floor       string   `json:"floor"`
	RoomRent    float64  `json:"roomRent"`
	Capacity    *int     `json:"roomCapacity"`
	FreeBeds    *int     `json:"freeBeds"`
	Description string   `json:"roomDescription"`
	Amenities   []string `json:"amenities"`
	AC          bool     `json:"ac"`
}

type roomPatchRequest struct {
	RoomID  uint           `json:"roomId"`
	Updates map[string]any `json:"updates"`
}

type roomDeleteRequest struct {
	RoomID uint `json:"roomId"`
}

type userPatchRequest struct {
	UserID  uint           `json:"userId"`
	Updates map[string]any `json:"updates"`
}

type userDeleteRequest struct {
	UserID uint `json:"userId"`
}

// ListRooms handles GET /admin/rooms.
func (ctl *AdminController) ListRooms(c *gin.Context) {
	rooms, err := ctl.rooms.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /admin/rooms/create.
func (ctl *AdminController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}

	room, err := ctl.rooms.Create(c.Request.Context(), services.RoomInput{
		RoomNumber:  req.RoomNumber,
		Floor:       req.Floor,
		Rent:        req.RoomRent,
		Capacity:    req.Capacity,
		FreeBeds:    req.FreeBeds,
		Description: req.Description,
		Amenities:   req.Amenities,
		AC:          req.AC,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles POST /admin/rooms/update.
func (ctl *AdminController) UpdateRoom(c *gin.Context) {
	var req roomPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomID == 0 {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}
	if req.Updates == nil {
		req.Updates = map[string]any{}
	}

	room, err := ctl.rooms.Update(c.Request.Context(), req.RoomID, req.Updates)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles POST /admin/rooms/delete.
func (ctl *AdminController) DeleteRoom(c *gin.Context) {
	var req roomDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomID == 0 {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}

	if err := ctl.rooms.Delete(c.Request.Context(), req.RoomID); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted successfully")
}

// ListUsers handles GET /admin/users. Admin accounts are excluded.
func (ctl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctl.users.ListTenants(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles POST /admin/users/update.
func (ctl *AdminController) UpdateUser(c *gin.Context) {
	var req userPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}
	if req.Updates == nil {
		req.Updates = map[string]any{}
	}

	user, err := ctl.users.AdminUpdate(c.Request.Context(), req.UserID, req.Updates)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles POST /admin/users/delete.
func (ctl *AdminController) DeleteUser(c *gin.Context) {
	var req userDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}

	if err := ctl.users.AdminDelete(c.Request.Context(), req.UserID); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "User deleted successfully")
}
