package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/services"
)

// SetupRouter wires the controllers onto the HTTP surface.
func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	adm *controllers.AdminController,
	tokens *services.TokenService,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	r.GET("/roomDetail", rc.Detail)

	authed := r.Group("", middleware.RequireAuth(tokens))
	{
		authed.POST("/userDetail", uc.Detail)
		authed.POST("/userupdate", uc.Update)
		authed.POST("/feePayment", bc.PayFee)
		authed.POST("/feerenewal", bc.RenewFee)
	}

	admin := r.Group("/admin", middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.GET("/rooms", adm.ListRooms)
		admin.POST("/rooms/create", adm.CreateRoom)
		admin.POST("/rooms/update", adm.UpdateRoom)
		admin.POST("/rooms/delete", adm.DeleteRoom)

		admin.GET("/users", adm.ListUsers)
		admin.POST("/users/update", adm.UpdateUser)
		admin.POST("/users/delete", adm.DeleteUser)
	}

	return r
}
