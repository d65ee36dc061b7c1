package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "ev_session"
	ctxSessionID      = "sessionID"
)

// withSession 從 cookie 取出 session id；缺少或無效時簽發新的 session。
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(sessionCookieName); err == nil {
			if sid, err := s.tokens.Parse(raw); err == nil {
				c.Set(ctxSessionID, sid)
				c.Next()
				return
			}
		}

		issued, err := s.tokens.Issue()
		if err != nil {
			log.Printf("issue session token failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error", "error_code": errCodeInternal})
			c.Abort()
			return
		}
		s.setSessionCookie(c, issued.Token, int(s.tokens.TTL().Seconds()))
		c.Set(ctxSessionID, issued.SessionID)
		c.Next()
	}
}

func (s *Server) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, value, maxAge, "/", "", s.secureCookie, true)
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

func (s *Server) ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[GIN] %v | %3d | %13v | %-7s %s",
			start.Format("2006/01/02 - 15:04:05"),
			status,
			latency,
			c.Request.Method,
			path,
		)
	}
}

// corsMiddleware 只對設定中的來源開放帶 cookie 的跨域請求，其餘來源不回 CORS 標頭。
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" && s.origins[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Language, Origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
