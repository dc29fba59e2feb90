package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"newsroom/internal/api"
	"newsroom/internal/config"
	"newsroom/internal/db"
	"newsroom/internal/user"
)

const flowSecret = "flow_test_secret"

func setupFlowTest(t *testing.T) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := db.SeedReferenceData(dbConn); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	db.DB = dbConn
	for _, table := range []string{"comments", "articles", "users"} {
		if err := db.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to reset %s: %v", table, err)
		}
	}
	cfg := &config.Config{}
	cfg.Server.JWTSecret = flowSecret
	cfg.Auth.CreatorUserID = 1
	return api.SetupRouter(cfg), cfg
}

func call(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Covers the whole publishing lifecycle: a fresh account cannot author, a
// promotion takes effect on the very next request with the same token, and
// ownership gates deletion.
func TestPublishingFlow(t *testing.T) {
	r, _ := setupFlowTest(t)

	// Sign up user A; defaults to the plain user rank
	w := call(t, r, "POST", "/sign-up", "", map[string]string{
		"firstName": "A", "lastName": "A", "username": "authorA", "password": "pw",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("sign-up A: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var signUpResp struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signUpResp); err != nil {
		t.Fatalf("decode sign-up response: %v", err)
	}
	tokenA := signUpResp.Token
	idA := signUpResp.User.ID

	// Rank 3 cannot author
	w = call(t, r, "POST", "/articles", tokenA, map[string]interface{}{
		"title": "first", "content": "draft", "categoryId": 1,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unpromoted create: expected 401, got %d", w.Code)
	}

	// Promote A to journalist directly in the datastore; the already-issued
	// token must pick the new role up immediately
	journalist, err := db.RoleByRank(db.DB, user.RankJournalist)
	if err != nil {
		t.Fatalf("role lookup: %v", err)
	}
	if err := db.DB.Model(&user.User{}).Where("id = ?", idA).Update("role_id", journalist.ID).Error; err != nil {
		t.Fatalf("promote A: %v", err)
	}

	w = call(t, r, "POST", "/articles", tokenA, map[string]interface{}{
		"title": "first", "content": "published", "categoryId": 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("promoted create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     uint `json:"id"`
		UserID uint `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode article: %v", err)
	}
	if created.UserID != idA {
		t.Errorf("article should be owned by A (%d), got %d", idA, created.UserID)
	}

	// Sign up user B (rank 3); B cannot delete A's article
	w = call(t, r, "POST", "/sign-up", "", map[string]string{
		"username": "readerB", "password": "pw",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("sign-up B: expected 200, got %d", w.Code)
	}
	var signUpB struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signUpB); err != nil {
		t.Fatalf("decode sign-up B: %v", err)
	}

	articlePath := fmt.Sprintf("/articles/%d", created.ID)
	w = call(t, r, "DELETE", articlePath, signUpB.Token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("B deleting A's article: expected 401, got %d", w.Code)
	}

	// Sign in as A and delete the article
	w = call(t, r, "POST", "/sign-in", "", map[string]string{
		"username": "authorA", "password": "pw",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in A: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var signIn struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signIn); err != nil {
		t.Fatalf("decode sign-in: %v", err)
	}
	w = call(t, r, "DELETE", articlePath, signIn.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("A deleting own article: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Gone for everyone now
	w = call(t, r, "GET", articlePath, "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}
