package routes

import (
	cartControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/cart"
	shopControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/shop"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public catalog and cart endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	// Catalog
	r.GET("/categories/", shopControllers.GetCategories(db))
	r.GET("/products/", shopControllers.GetProducts(db))
	r.GET("/product/:slug/", shopControllers.GetProductDetail(db))

	// Cart
	r.POST("/add_item/", cartControllers.AddItem(db))
	r.GET("/product_in_cart/", cartControllers.ProductInCart(db))
	r.GET("/get_cart_stat/", cartControllers.GetCartStat(db))
	r.GET("/get_cart/", cartControllers.GetCart(db))
	r.PATCH("/update/", cartControllers.UpdateQuantity(db))
	r.POST("/delete_item/", cartControllers.DeleteItem(db))
}
