package routes

import (
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/config"
	paymentControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/payment"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the shop, user,
// payment and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, gw *paymentControllers.Gateway) {
	// Public catalog + cart routes (no middleware)
	SetupShopRoutes(r, db)

	// Registration, login and JWT-protected profile routes
	SetupUserRoutes(r, db, cfg)

	// Payment initiation + gateway callback
	SetupPaymentRoutes(r, db, cfg, gw)

	// Admin catalog management (API-key-protected)
	SetupAdminRoutes(r, db, cfg)
}
