package routes

import (
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/config"
	paymentControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/payment"
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPaymentRoutes registers payment initiation (JWT-protected) and the
// gateway callback (best-effort auth: the gateway itself carries no token).
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, gw *paymentControllers.Gateway) {
	r.POST("/initiate_payment/",
		middleware.ValidateToken(cfg.JWTSecret),
		paymentControllers.InitiatePayment(db, gw, cfg.PaymentCurrency, cfg.PaymentTax),
	)

	r.GET("/payment_callback/",
		middleware.OptionalToken(cfg.JWTSecret),
		paymentControllers.PaymentCallback(db, gw),
	)
}
