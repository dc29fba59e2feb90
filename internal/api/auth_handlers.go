package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/auth"
	"newsroom/internal/config"
	"newsroom/internal/db"
	"newsroom/internal/user"
)

type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Image     string `json:"image,omitempty"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /sign-up
func SignUpHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing username or password"}})
			return
		}

		var existing user.User
		if err := db.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "The username you're trying to use already exists!"}})
			return
		}

		pwHash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Password hash failed"}})
			return
		}
		role, err := db.RoleByRank(db.DB, user.RankUser)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Roles not seeded"}})
			return
		}
		newUser := user.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Username:     req.Username,
			PasswordHash: pwHash,
			Image:        req.Image,
			RoleID:       role.ID,
		}
		if err := db.DB.Create(&newUser).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "The username you're trying to use already exists!"}})
			return
		}
		token, err := auth.IssueToken(cfg.Server.JWTSecret, newUser.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to issue token"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": newUser, "token": token})
	}
}

// POST /sign-in
func SignInHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing username or password"}})
			return
		}
		var u user.User
		if err := db.DB.Preload("Role").Where("username = ?", req.Username).First(&u).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Username/password invalid!"}})
			return
		}
		if err := user.CheckPassword(u.PasswordHash, req.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Username/password invalid!"}})
			return
		}
		token, err := auth.IssueToken(cfg.Server.JWTSecret, u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to issue token"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
	}
}

// GET /validate — restores a session from an existing token.
func ValidateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := auth.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user": u, "token": c.GetHeader("Authorization")})
	}
}
