package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/auth"
	"newsroom/internal/authz"
	"newsroom/internal/content"
	"newsroom/internal/db"
)

type CreateCommentRequest struct {
	ArticleID uint   `json:"articleId"`
	Content   string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func findComment(c *gin.Context) *content.Comment {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var cm content.Comment
	if err := db.DB.First(&cm, id).Error; err != nil {
		return nil
	}
	return &cm
}

// POST /comments
func CreateCommentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing comment content"}})
			return
		}
		var article *content.Article
		var a content.Article
		if err := db.DB.First(&a, req.ArticleID).Error; err == nil {
			article = &a
		}
		actor := auth.CurrentUser(c)
		if d := authz.CanCreateComment(actor, article); !d.Allowed() {
			reject(c, d)
			return
		}
		comment := content.Comment{
			Content:   req.Content,
			ArticleID: article.ID,
			UserID:    actor.ID,
		}
		if err := db.DB.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Create error"}})
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

// PATCH /comments/:id
func UpdateCommentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		comment := findComment(c)
		actor := auth.CurrentUser(c)
		if d := authz.CanUpdateComment(actor, comment); !d.Allowed() {
			reject(c, d)
			return
		}
		var req UpdateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing comment content"}})
			return
		}
		comment.Content = req.Content
		if err := db.DB.Save(comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

// DELETE /comments/:id
func DeleteCommentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		comment := findComment(c)
		// Deleting needs the parent article: its author may moderate.
		var parent *content.Article
		if comment != nil {
			var a content.Article
			if err := db.DB.First(&a, comment.ArticleID).Error; err == nil {
				parent = &a
			}
		}
		actor := auth.CurrentUser(c)
		if d := authz.CanDeleteComment(actor, comment, parent); !d.Allowed() {
			reject(c, d)
			return
		}
		if err := db.DB.Delete(comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Delete error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
	}
}
