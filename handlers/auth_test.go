package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"stockfolio/config"
	"stockfolio/models"
)

func TestRegister_NewUser(t *testing.T) {
	router := setupTest(t)

	w := doRequest(router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	}, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["token"] == "" || body["refresh_token"] == "" {
		t.Error("expected token and refresh_token in response")
	}

	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user object in response")
	}
	if user["balance"] != models.StartingBalance {
		t.Errorf("expected starting balance %v, got %v", models.StartingBalance, user["balance"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password hash leaked in response")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := setupTest(t)
	registerUser(t, router, "dup@example.com")

	w := doRequest(router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Other",
		"email":    "dup@example.com",
		"password": "secret456",
	}, "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", w.Code)
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 user, got %d", count)
	}
}

func TestLogin(t *testing.T) {
	router := setupTest(t)
	registerUser(t, router, "login@example.com")

	w := doRequest(router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "login@example.com",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "login@example.com",
		"password": "wrong-password",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}

	w = doRequest(router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", w.Code)
	}
}

func TestRefresh(t *testing.T) {
	router := setupTest(t)

	w := doRequest(router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Ref",
		"email":    "refresh@example.com",
		"password": "secret123",
	}, "")
	refreshToken := decodeBody(t, w)["refresh_token"].(string)

	w = doRequest(router, http.MethodPost, "/api/auth/refresh", gin.H{
		"refresh_token": refreshToken,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid refresh token, got %d: %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["token"] == "" {
		t.Error("expected new access token")
	}

	w = doRequest(router, http.MethodPost, "/api/auth/refresh", gin.H{
		"refresh_token": "not-a-real-token",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown refresh token, got %d", w.Code)
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router := setupTest(t)

	w := doRequest(router, http.MethodGet, "/api/portfolio", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	w = doRequest(router, http.MethodGet, "/api/portfolio", nil, "garbage-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with invalid token, got %d", w.Code)
	}
}

func TestProfile(t *testing.T) {
	router := setupTest(t)
	token, _ := registerUser(t, router, "profile@example.com")

	w := doRequest(router, http.MethodGet, "/api/user/profile", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if decodeBody(t, w)["email"] != "profile@example.com" {
		t.Error("profile returned wrong user")
	}

	w = doRequest(router, http.MethodPut, "/api/user/profile", gin.H{
		"name":  "Renamed",
		"phone": "9999999999",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["name"] != "Renamed" {
		t.Errorf("expected updated name, got %v", body["name"])
	}
}
