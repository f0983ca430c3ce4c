package cartControllers

import (
	"errors"
	"net/http"

	"github.com/EmmanuelOnyekachi21/VioletteStores-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddItemInput struct {
	CartCode  string `json:"cart_code" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
}

type UpdateQuantityInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type DeleteItemInput struct {
	ItemID uint `json:"item_id" binding:"required"`
}

type cartItemResponse struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Product  models.Product  `json:"product"`
	Total    decimal.Decimal `json:"total"`
}

type cartResponse struct {
	ID         uint               `json:"id"`
	CartCode   string             `json:"cart_code"`
	Items      []cartItemResponse `json:"items"`
	SumTotal   decimal.Decimal    `json:"sum_total"`
	NumOfItems int                `json:"num_of_items"`
	Paid       bool               `json:"paid"`
}

type cartStatResponse struct {
	ID         uint            `json:"id"`
	CartCode   string          `json:"cart_code"`
	NumOfItems int             `json:"num_of_items"`
	SumTotal   decimal.Decimal `json:"sum_total"`
}

func itemTotal(item models.CartItem) decimal.Decimal {
	return item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// summarize derives sum_total and num_of_items on read; neither is stored.
func summarize(items []models.CartItem) (decimal.Decimal, int) {
	sum := decimal.Zero
	count := 0
	for _, item := range items {
		sum = sum.Add(itemTotal(item))
		count += item.Quantity
	}
	return sum, count
}

// POST /add_item/
// Resolves or creates the cart by its code, then get-or-creates the item for
// the product and resets its quantity to 1. The whole sequence runs in one
// DB transaction so a concurrent add for the same (cart, product) pair
// cannot produce duplicate rows.
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		var product models.Product
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&product, input.ProductID).Error; err != nil {
				return err
			}

			var cart models.Cart
			if err := tx.Where(models.Cart{CartCode: input.CartCode}).FirstOrCreate(&cart).Error; err != nil {
				return err
			}

			if err := tx.Where(models.CartItem{CartID: cart.ID, ProductID: product.ID}).
				FirstOrCreate(&item).Error; err != nil {
				return err
			}

			item.Quantity = 1
			return tx.Save(&item).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}

		item.Product = product
		c.JSON(http.StatusCreated, gin.H{
			"data": cartItemResponse{
				ID:       item.ID,
				Quantity: item.Quantity,
				Product:  item.Product,
				Total:    itemTotal(item),
			},
			"message": "Product Added Successfully",
		})
	}
}

// GET /product_in_cart/?cart_code=...&product_id=...
// A missing cart or product is not an error here, just "not in cart".
func ProductInCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartCode := c.Query("cart_code")
		productID := c.Query("product_id")

		var cart models.Cart
		if err := db.Where("cart_code = ?", cartCode).First(&cart).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"product_exists": false})
			return
		}

		var count int64
		if err := db.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"product_exists": count > 0})
	}
}

func getUnpaidCart(db *gorm.DB, cartCode string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product.Category").
		Where("cart_code = ? AND paid = ?", cartCode, false).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GET /get_cart_stat/?cart_code=...
func GetCartStat(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := getUnpaidCart(db, c.Query("cart_code"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		sum, count := summarize(cart.Items)
		c.JSON(http.StatusOK, cartStatResponse{
			ID:         cart.ID,
			CartCode:   cart.CartCode,
			NumOfItems: count,
			SumTotal:   sum,
		})
	}
}

// GET /get_cart/?cart_code=...
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := getUnpaidCart(db, c.Query("cart_code"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		items := make([]cartItemResponse, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, cartItemResponse{
				ID:       item.ID,
				Quantity: item.Quantity,
				Product:  item.Product,
				Total:    itemTotal(item),
			})
		}

		sum, count := summarize(cart.Items)
		c.JSON(http.StatusOK, cartResponse{
			ID:         cart.ID,
			CartCode:   cart.CartCode,
			Items:      items,
			SumTotal:   sum,
			NumOfItems: count,
			Paid:       cart.Paid,
		})
	}
}

// PATCH /update/
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Preload("Product").First(&item, input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			}
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": cartItemResponse{
				ID:       item.ID,
				Quantity: item.Quantity,
				Product:  item.Product,
				Total:    itemTotal(item),
			},
			"message": "Quantity updated successfully",
		})
	}
}

// POST /delete_item/
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DeleteItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result := db.Delete(&models.CartItem{}, input.ItemID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusNoContent, gin.H{"message": "Item deleted successfully"})
	}
}
