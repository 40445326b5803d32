package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stockfolio/config"
	"stockfolio/database"
	"stockfolio/models"
)

var testDBCounter int64

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTest wires an in-memory SQLite store and a miniredis cache into
// the package globals and returns a fully routed engine.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	config.DB = db

	mr := miniredis.RunT(t)
	config.Rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	router := gin.New()
	RegisterRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser creates an account through the API and returns its
// access token and user ID. New accounts start with a 1000 balance.
func registerUser(t *testing.T, router *gin.Engine, email string) (string, uint) {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed with status %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("register returned no token")
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	return token, user.ID
}

func userBalance(t *testing.T, userID uint) float64 {
	t.Helper()
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		t.Fatalf("failed to load user %d: %v", userID, err)
	}
	return user.Balance
}

func seedStock(t *testing.T, symbol string, price float64, sector string, changePercent float64, volume int64) {
	t.Helper()
	stock := models.Stock{
		Symbol:        symbol,
		Name:          symbol + " Ltd",
		Price:         price,
		ChangePercent: changePercent,
		Sector:        sector,
		Volume:        volume,
	}
	if err := config.DB.Create(&stock).Error; err != nil {
		t.Fatalf("failed to seed stock %s: %v", symbol, err)
	}
}
