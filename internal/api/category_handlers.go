package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/content"
	"newsroom/internal/db"
)

// GET /categories
func ListCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []content.Category
		if err := db.DB.Order("id asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
