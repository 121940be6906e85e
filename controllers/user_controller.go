package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

// UserUsecase is the slice of the user service the controller needs.
type UserUsecase interface {
	Detail(ctx context.Context, email string) (*models.User, error)
	SelfUpdate(ctx context.Context, email string, in services.SelfUpdateInput) error
}

// UserController serves the profile endpoints.
type UserController struct {
	users UserUsecase
}

// NewUserController creates a new user controller.
func NewUserController(users UserUsecase) *UserController {
	return &UserController{users: users}
}

type userDetailRequest struct {
	Email string `json:"email"`
}

type userUpdateRequest struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Mobile       string  `json:"mobile"`
	BookedRoomNo *string `json:"BookedRoomNo"`
}

// mayActFor rejects a non-admin token acting on another user's email.
func mayActFor(c *gin.Context, email string) bool {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return false
	}
	return claims.IsAdmin || claims.Email == email
}

// Detail handles POST /userDetail.
func (ctl *UserController) Detail(c *gin.Context) {
	var req userDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}
	if !mayActFor(c, req.Email) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Cannot access another user's profile", "code": "FORBIDDEN"})
		return
	}

	user, err := ctl.users.Detail(c.Request.Context(), req.Email)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User details fetched successfully",
		"user":    user,
	})
}

// Update handles POST /userupdate.
func (ctl *UserController) Update(c *gin.Context) {
	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}
	if !mayActFor(c, req.Email) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Cannot update another user's profile", "code": "FORBIDDEN"})
		return
	}

	err := ctl.users.SelfUpdate(c.Request.Context(), req.Email, services.SelfUpdateInput{
		Name:         req.Name,
		Mobile:       req.Mobile,
		BookedRoomNo: req.BookedRoomNo,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Profile updated successfully")
}
