package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/authz"
)

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// reject maps a denial to its HTTP status. Forbidden answers 401 alongside
// Unauthenticated on purpose; only the message tells them apart.
func reject(c *gin.Context, d authz.Decision) {
	status := http.StatusUnauthorized
	if d.Outcome == authz.NotFound {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": gin.H{"message": d.Reason}})
}
