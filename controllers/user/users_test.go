package userControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	userControllers "github.com/EmmanuelOnyekachi21/VioletteStores-api/controllers/user"
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/middleware"
	"github.com/EmmanuelOnyekachi21/VioletteStores-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

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
	r.POST("/register/", userControllers.RegisterUser(db))
	r.POST("/login/", userControllers.LoginUser(db, testSecret))

	authed := r.Group("/")
	authed.Use(middleware.ValidateToken(testSecret))
	{
		authed.GET("/get_username/", userControllers.GetUsername(db))
		authed.GET("/user_info/", userControllers.UserInfo(db))
		authed.POST("/edit_profile/", userControllers.EditProfile(db))
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerInput() map[string]interface{} {
	return map[string]interface{}{
		"username":   "ada",
		"email":      "ada@example.com",
		"first_name": "Ada",
		"last_name":  "Obi",
		"password":   "correct horse battery",
		"password2":  "correct horse battery",
		"city":       "Lagos",
		"state":      "Lagos",
		"address":    "12 Marina Rd",
		"phone":      "08010000000",
	}
}

func userCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	return count
}

func TestRegisterSuccess(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPost, "/register/", "", registerInput())
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("username = ?", "ada").First(&user).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte("correct horse battery")))
	require.NotContains(t, w.Body.String(), user.PasswordHash)
}

func TestRegisterFieldErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]interface{})
		field   string
		message string
	}{
		{
			name:    "password mismatch",
			mutate:  func(in map[string]interface{}) { in["password2"] = "something else!" },
			field:   "password",
			message: "Passwords do not match",
		},
		{
			name:    "short password",
			mutate:  func(in map[string]interface{}) { in["password"] = "abc"; in["password2"] = "abc" },
			field:   "password",
			message: "too short",
		},
		{
			name:    "numeric password",
			mutate:  func(in map[string]interface{}) { in["password"] = "1234567890"; in["password2"] = "1234567890" },
			field:   "password",
			message: "entirely numeric",
		},
		{
			name:    "common password",
			mutate:  func(in map[string]interface{}) { in["password"] = "qwerty123"; in["password2"] = "qwerty123" },
			field:   "password",
			message: "too common",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			r := newRouter(db)

			input := registerInput()
			tc.mutate(input)
			w := doJSON(t, r, http.MethodPost, "/register/", "", input)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var errs map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errs))
			require.Contains(t, errs[tc.field], tc.message)
			require.Zero(t, userCount(t, db), "no user row should be written")
		})
	}
}

func TestRegisterDuplicateUsernameAndEmail(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPost, "/register/", "", registerInput())
	require.Equal(t, http.StatusCreated, w.Code)

	// same username, different email
	input := registerInput()
	input["email"] = "other@example.com"
	w = doJSON(t, r, http.MethodPost, "/register/", "", input)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errs map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errs))
	require.Equal(t, "Username already exists", errs["username"])

	// same email, different username
	input = registerInput()
	input["username"] = "chidi"
	w = doJSON(t, r, http.MethodPost, "/register/", "", input)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errs))
	require.Equal(t, "Email already exists", errs["email"])

	require.Equal(t, int64(1), userCount(t, db))
}

func TestLoginAndGetUsername(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	doJSON(t, r, http.MethodPost, "/register/", "", registerInput())

	w := doJSON(t, r, http.MethodPost, "/login/", "", map[string]interface{}{
		"username": "ada", "password": "correct horse battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = doJSON(t, r, http.MethodGet, "/get_username/", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"username":"ada"`)

	// wrong password
	w = doJSON(t, r, http.MethodPost, "/login/", "", map[string]interface{}{
		"username": "ada", "password": "nope nope nope",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// no token
	w = doJSON(t, r, http.MethodGet, "/get_username/", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEditProfilePartialUpdate(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	doJSON(t, r, http.MethodPost, "/register/", "", registerInput())
	var user models.User
	require.NoError(t, db.Where("username = ?", "ada").First(&user).Error)
	token, err := middleware.GenerateToken(testSecret, user.ID, user.Username)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/edit_profile/", token, map[string]interface{}{
		"city": "Abuja",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.Equal(t, "Abuja", reloaded.City)
	require.Equal(t, "Ada", reloaded.FirstName, "untouched fields keep their values")
	require.Equal(t, "ada@example.com", reloaded.Email)
}
