package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"status":    "alive",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"health":   "ok",
		"sessions": s.sessions.Active(c.Request.Context()),
		"time":     time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"rules":   s.sessions.Rules(),
	})
}
