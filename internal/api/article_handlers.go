package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom/internal/auth"
	"newsroom/internal/authz"
	"newsroom/internal/content"
	"newsroom/internal/db"
)

type ArticleRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Image      string `json:"image,omitempty"`
	CategoryID uint   `json:"categoryId"`
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// findArticle returns nil when the id is absent or malformed; the decision
// engine turns nil into a not-found outcome.
func findArticle(c *gin.Context) *content.Article {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var a content.Article
	if err := db.DB.First(&a, id).Error; err != nil {
		return nil
	}
	return &a
}

// GET /articles
func ListArticlesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var articles []content.Article
		if err := db.DB.Order("created_at desc").Find(&articles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		c.JSON(http.StatusOK, articles)
	}
}

// GET /articles/:id
func GetArticleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := findArticle(c)
		if a == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Article not found"}})
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// GET /articles/:id/comments
func ListArticleCommentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := findArticle(c)
		if a == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Article not found"}})
			return
		}
		var comments []content.Comment
		if err := db.DB.Where("article_id = ?", a.ID).Order("created_at asc").Find(&comments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// POST /articles
func CreateArticleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := auth.CurrentUser(c)
		if d := authz.CanCreateArticle(actor); !d.Allowed() {
			reject(c, d)
			return
		}
		var req ArticleRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing title or content"}})
			return
		}
		article := content.Article{
			Title:      req.Title,
			Content:    req.Content,
			Image:      req.Image,
			CategoryID: req.CategoryID,
			UserID:     actor.ID,
		}
		if err := db.DB.Create(&article).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Create error"}})
			return
		}
		c.JSON(http.StatusCreated, article)
	}
}

// PATCH /articles/:id
func UpdateArticleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		article := findArticle(c)
		actor := auth.CurrentUser(c)
		if d := authz.CanModifyArticle(actor, article); !d.Allowed() {
			reject(c, d)
			return
		}
		var req ArticleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if req.Title != "" {
			article.Title = req.Title
		}
		if req.Content != "" {
			article.Content = req.Content
		}
		if req.Image != "" {
			article.Image = req.Image
		}
		if req.CategoryID != 0 {
			article.CategoryID = req.CategoryID
		}
		if err := db.DB.Save(article).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// DELETE /articles/:id
func DeleteArticleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		article := findArticle(c)
		actor := auth.CurrentUser(c)
		if d := authz.CanModifyArticle(actor, article); !d.Allowed() {
			reject(c, d)
			return
		}
		if err := db.DB.Delete(article).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Delete error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
	}
}
