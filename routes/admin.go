package routes

import (
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/config"
	shopControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/shop"
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the "/admin/*" catalog-management endpoints.
// Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(cfg.AdminAPIKey))
	{
		adminGroup.POST("/categories", shopControllers.CreateCategory(db))
		adminGroup.POST("/products", shopControllers.CreateProduct(db))
		adminGroup.GET("/products/export-excel", shopControllers.ExportProductsToExcel(db))
	}
}
