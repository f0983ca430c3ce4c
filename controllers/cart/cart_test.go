package cartControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/cart"
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Transaction{},
	))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/add_item/", cartControllers.AddItem(db))
	r.GET("/product_in_cart/", cartControllers.ProductInCart(db))
	r.GET("/get_cart_stat/", cartControllers.GetCartStat(db))
	r.GET("/get_cart/", cartControllers.GetCart(db))
	r.PATCH("/update/", cartControllers.UpdateQuantity(db))
	r.POST("/delete_item/", cartControllers.DeleteItem(db))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	t.Helper()
	cat := models.Category{Name: "General"}
	require.NoError(t, db.Where(models.Category{Name: "General"}).FirstOrCreate(&cat).Error)
	p := models.Product{
		Name:       name,
		CategoryID: cat.ID,
		Price:      decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestAddItemResetsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, "Sneaker", "10.00")

	body := map[string]interface{}{"cart_code": "abc123", "product_id": product.ID}
	w := doJSON(t, r, http.MethodPost, "/add_item/", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// bump the quantity, then add the same product again
	var item models.CartItem
	require.NoError(t, db.First(&item).Error)
	item.Quantity = 5
	require.NoError(t, db.Save(&item).Error)

	w = doJSON(t, r, http.MethodPost, "/add_item/", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPost, "/add_item/", map[string]interface{}{
		"cart_code": "abc123", "product_id": 999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProductInCart(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, "Sneaker", "10.00")

	// no cart yet: false, not an error
	w := doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/product_in_cart/?cart_code=abc123&product_id=%d", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"product_exists":false`)

	doJSON(t, r, http.MethodPost, "/add_item/", map[string]interface{}{
		"cart_code": "abc123", "product_id": product.ID,
	})

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/product_in_cart/?cart_code=abc123&product_id=%d", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"product_exists":true`)
}

func TestCartSummary(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "Sneaker", "10.00")
	p2 := seedProduct(t, db, "Socks", "5.00")

	cart := models.Cart{CartCode: "abc123"}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: p1.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: p2.ID, Quantity: 3}).Error)

	w := doJSON(t, r, http.MethodGet, "/get_cart_stat/?cart_code=abc123", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stat struct {
		NumOfItems int             `json:"num_of_items"`
		SumTotal   decimal.Decimal `json:"sum_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stat))
	require.Equal(t, 5, stat.NumOfItems)
	require.True(t, stat.SumTotal.Equal(decimal.RequireFromString("35.00")),
		"sum_total = %s", stat.SumTotal)

	w = doJSON(t, r, http.MethodGet, "/get_cart/?cart_code=abc123", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var full struct {
		Items      []json.RawMessage `json:"items"`
		NumOfItems int               `json:"num_of_items"`
		SumTotal   decimal.Decimal   `json:"sum_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &full))
	require.Len(t, full.Items, 2)
	require.Equal(t, 5, full.NumOfItems)
	require.True(t, full.SumTotal.Equal(decimal.RequireFromString("35.00")))
}

func TestGetCartIgnoresPaidCarts(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	cart := models.Cart{CartCode: "abc123", Paid: true}
	require.NoError(t, db.Create(&cart).Error)

	w := doJSON(t, r, http.MethodGet, "/get_cart/?cart_code=abc123", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/get_cart_stat/?cart_code=abc123", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, "Sneaker", "10.00")

	cart := models.Cart{CartCode: "abc123"}
	require.NoError(t, db.Create(&cart).Error)
	item := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(t, r, http.MethodPatch, "/update/", map[string]interface{}{
		"item_id": item.ID, "quantity": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	require.Equal(t, 4, reloaded.Quantity)

	w = doJSON(t, r, http.MethodPatch, "/update/", map[string]interface{}{
		"item_id": 999, "quantity": 4,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteItem(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, "Sneaker", "10.00")

	cart := models.Cart{CartCode: "abc123"}
	require.NoError(t, db.Create(&cart).Error)
	item := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(t, r, http.MethodPost, "/delete_item/", map[string]interface{}{"item_id": item.ID})
	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	require.Zero(t, count)

	w = doJSON(t, r, http.MethodPost, "/delete_item/", map[string]interface{}{"item_id": item.ID})
	require.Equal(t, http.StatusNotFound, w.Code)
}
