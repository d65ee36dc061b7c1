package httpapi

import (
	"net/http"

	"baccarat-ev/internal/application/session"
	"baccarat-ev/internal/infra/memory"
	"baccarat-ev/internal/infrastructure/config"
	"baccarat-ev/internal/infrastructure/i18n"
	"baccarat-ev/internal/infrastructure/token"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	engine       *gin.Engine
	sessions     *session.Service
	tokens       *token.Issuer
	defaultLang  language.Tag
	webDir       string
	secureCookie bool
	origins      map[string]bool
}

// NewServer 建立 API 伺服器；sessions 為 nil 時使用記憶體 Store。
func NewServer(cfg config.Config, sessions *session.Service) *Server {
	cfg = config.WithDefaults(cfg)
	if sessions == nil {
		sessions = session.NewService(memory.NewStore(), cfg.Rules.OutcomeRules())
	}

	s := &Server{
		engine:       gin.New(),
		sessions:     sessions,
		tokens:       token.NewIssuer(cfg.Session.Secret, cfg.Session.TokenTTL),
		defaultLang:  i18n.Resolve(cfg.UI.DefaultLang, i18n.Default()),
		webDir:       cfg.UI.WebDir,
		secureCookie: cfg.Session.SecureCookie,
		origins:      make(map[string]bool, len(cfg.HTTP.AllowedOrigins)),
	}
	for _, o := range cfg.HTTP.AllowedOrigins {
		s.origins[o] = true
	}
	s.registerRoutes()
	return s
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Sessions 主要用於測試檢查 session 狀態。
func (s *Server) Sessions() *session.Service {
	return s.sessions
}

func (s *Server) registerRoutes() {
	r := s.engine
	r.Use(gin.Recovery(), s.ginLogger(), s.corsMiddleware())

	api := r.Group("/api")
	api.GET("/ping", s.handlePing)
	api.GET("/health", s.handleHealth)
	api.GET("/rules", s.handleRules)

	tr := api.Group("/tracker", s.withSession())
	tr.GET("", s.handleSnapshot)
	tr.DELETE("", s.handleDiscard)
	tr.POST("/outcomes", s.handleAppend)
	tr.POST("/clear", s.handleClear)
	tr.GET("/chart", s.handleChart)

	// 前端操作介面
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.webDir))))
}
