package httpapi

import (
	"baccarat-ev/internal/infrastructure/i18n"

	"github.com/gin-gonic/gin"
)

// renderer 依 ?lang= 與 Accept-Language 決定輸出語系。
func (s *Server) renderer(c *gin.Context) i18n.Renderer {
	tag := i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"), s.defaultLang)
	return i18n.NewRenderer(tag)
}
