package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

// AuthUsecase is the slice of the auth service the controller needs.
type AuthUsecase interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// AuthController serves /register and /login.
type AuthController struct {
	auth AuthUsecase
}

// NewAuthController creates a new auth controller.
func NewAuthController(auth AuthUsecase) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Mobile    string `json:"mobile"`
	AadarCard string `json:"aadarCard"` // wire name kept from the registration form
	PanCard   string `json:"panCard"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (ctl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}

	user, err := ctl.auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
		Aadhaar:  req.AadarCard,
		PANCard:  req.PanCard,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful! You can now login.",
		"user": gin.H{
			"name":   user.Name,
			"email":  user.Email,
			"mobile": user.Mobile,
		},
	})
}

// Login handles POST /login.
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}

	user, token, err := ctl.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Summary(),
	})
}
