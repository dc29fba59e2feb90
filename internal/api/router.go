package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"newsroom/internal/auth"
	"newsroom/internal/config"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(RequestID())

	identify := auth.Identify(cfg)

	r.GET("/health", healthHandler)

	// Auth
	r.POST("/sign-up", SignUpHandler(cfg))
	r.POST("/sign-in", SignInHandler(cfg))
	r.GET("/validate", auth.RequireIdentity(cfg), ValidateHandler())

	// Articles: reads are public, writes go through the decision engine
	r.GET("/articles", ListArticlesHandler())
	r.GET("/articles/:id", GetArticleHandler())
	r.GET("/articles/:id/comments", ListArticleCommentsHandler())
	r.POST("/articles", identify, CreateArticleHandler())
	r.PATCH("/articles/:id", identify, UpdateArticleHandler())
	r.DELETE("/articles/:id", identify, DeleteArticleHandler())

	// Comments
	r.POST("/comments", identify, CreateCommentHandler())
	r.PATCH("/comments/:id", identify, UpdateCommentHandler())
	r.DELETE("/comments/:id", identify, DeleteCommentHandler())

	// Reference data
	r.GET("/categories", ListCategoriesHandler())

	// Admin
	r.GET("/users", identify, ListUsersHandler())
	r.PATCH("/users/:id/role", identify, ChangeUserRoleHandler(cfg))

	return r
}
