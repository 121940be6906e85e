package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/utils"
)

// RoomLister is the read-only slice of the room service the public
// controller needs.
type RoomLister interface {
	List(ctx context.Context) ([]models.Room, error)
}

// RoomController serves the public room listing.
type RoomController struct {
	rooms RoomLister
}

// NewRoomController creates a new room controller.
func NewRoomController(rooms RoomLister) *RoomController {
	return &RoomController{rooms: rooms}
}

// Detail handles GET /roomDetail. An empty inventory is an empty array, not
// an error.
func (ctl *RoomController) Detail(c *gin.Context) {
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
