package httpapi

import (
	"errors"
	"log"
	"net/http"

	"baccarat-ev/internal/domain/outcome"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleSnapshot(c *gin.Context) {
	snap, err := s.sessions.Open(c.Request.Context(), sessionID(c))
	if err != nil {
		log.Printf("open session failed: %v", err)
		writeError(c, http.StatusInternalServerError, errCodeInternal, "internal error")
		return
	}
	c.JSON(http.StatusOK, newSnapshotResponse(snap, s.renderer(c)))
}

func (s *Server) handleAppend(c *gin.Context) {
	var body struct {
		Symbol string `json:"symbol"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	sym, err := outcome.ParseSymbol(body.Symbol)
	if err != nil {
		writeError(c, http.StatusBadRequest, errCodeInvalidSymbol, "symbol must be B or P")
		return
	}

	sid := sessionID(c)
	snap, err := s.sessions.Append(c.Request.Context(), sid, sym)
	if err != nil {
		if errors.Is(err, outcome.ErrInvalidSymbol) {
			writeError(c, http.StatusBadRequest, errCodeInvalidSymbol, "symbol must be B or P")
			return
		}
		log.Printf("append outcome failed session=%s: %v", sid, err)
		writeError(c, http.StatusInternalServerError, errCodeInternal, "internal error")
		return
	}
	log.Printf("outcome recorded session=%s symbol=%s hands=%d ev_points=%d", sid, sym, len(snap.History), len(snap.EVLog))
	c.JSON(http.StatusOK, newSnapshotResponse(snap, s.renderer(c)))
}

func (s *Server) handleClear(c *gin.Context) {
	sid := sessionID(c)
	snap, err := s.sessions.Clear(c.Request.Context(), sid)
	if err != nil {
		log.Printf("clear session failed session=%s: %v", sid, err)
		writeError(c, http.StatusInternalServerError, errCodeInternal, "internal error")
		return
	}
	log.Printf("history cleared session=%s", sid)
	c.JSON(http.StatusOK, newSnapshotResponse(snap, s.renderer(c)))
}

// handleDiscard 丟棄 session 並清除 cookie，下次請求會取得新的空白紀錄。
func (s *Server) handleDiscard(c *gin.Context) {
	sid := sessionID(c)
	if err := s.sessions.Discard(c.Request.Context(), sid); err != nil {
		log.Printf("discard session failed session=%s: %v", sid, err)
		writeError(c, http.StatusInternalServerError, errCodeInternal, "internal error")
		return
	}
	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleChart(c *gin.Context) {
	snap, err := s.sessions.Open(c.Request.Context(), sessionID(c))
	if err != nil {
		log.Printf("open session failed: %v", err)
		writeError(c, http.StatusInternalServerError, errCodeInternal, "internal error")
		return
	}
	c.JSON(http.StatusOK, newChartResponse(snap.EVLog, s.renderer(c)))
}
