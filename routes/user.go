package routes

import (
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/config"
	userControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/user"
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers registration/login plus the JWT-protected
// profile endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.POST("/register/", userControllers.RegisterUser(db))
	r.POST("/login/", userControllers.LoginUser(db, cfg.JWTSecret))

	authed := r.Group("/")
	authed.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		authed.GET("/get_username/", userControllers.GetUsername(db))
		authed.GET("/user_info/", userControllers.UserInfo(db))
		authed.POST("/edit_profile/", userControllers.EditProfile(db))
	}
}
