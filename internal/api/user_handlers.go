package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/auth"
	"newsroom/internal/authz"
	"newsroom/internal/config"
	"newsroom/internal/db"
	"newsroom/internal/user"
)

type ChangeRoleRequest struct {
	RoleID uint `json:"roleId"`
}

// GET /users  [admin only]
func ListUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := auth.CurrentUser(c)
		if d := authz.CanListUsers(actor); !d.Allowed() {
			reject(c, d)
			return
		}
		var users []user.User
		if err := db.DB.Preload("Role").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PATCH /users/:id/role  [admin only, creator account protected]
func ChangeUserRoleHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var target *user.User
		if id, ok := paramID(c); ok {
			var u user.User
			if err := db.DB.First(&u, id).Error; err == nil {
				target = &u
			}
		}
		actor := auth.CurrentUser(c)
		if d := authz.CanChangeRole(actor, target, cfg.Auth.CreatorUserID); !d.Allowed() {
			reject(c, d)
			return
		}
		var req ChangeRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RoleID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing roleId"}})
			return
		}
		var role user.Role
		if err := db.DB.First(&role, req.RoleID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown role"}})
			return
		}
		if err := db.DB.Model(target).Update("role_id", role.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
	}
}
