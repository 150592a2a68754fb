package web

import (
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwise/writertools/internal/config"
)

// Server is the writertools web server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new web server
func NewServer(cfg *config.Config) *Server {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	s := &Server{
		router: router,
		cfg:    cfg,
	}

	router.SetFuncMap(template.FuncMap{
		"fmtSeconds": fmtSeconds,
		"fmtDate":    fmtDate,
	})
	router.LoadHTMLGlob(cfg.Server.TemplateGlob)

	// Accounts
	router.GET("/accounts/login/", s.handleLoginPage)
	router.POST("/accounts/login/", s.handleLogin)
	router.POST("/accounts/logout/", s.handleLogout)

	// Everything else requires a logged-in user
	authed := router.Group("/")
	authed.Use(s.requireUser)
	{
		authed.GET("", s.handleDashboard)

		// Word tracker
		track := authed.Group("/track")
		{
			track.GET("/log_work/", s.handleLogWorkPage)
			track.POST("/log_work/", s.handleLogWork)
			track.GET("/stats/", s.handleStats)
			track.GET("/session/", s.handleSessionStart)
			track.POST("/session/", s.handleSessionStart)
			track.GET("/session/:id/", s.handleSessionTimer)
		}

		// Plot board
		plot := authed.Group("/plot")
		{
			plot.GET("/", s.handleBoardList)
			plot.POST("/create/", s.handleBoardCreate)
			plot.GET("/boards/:id/", s.handleBoardDetail)
			plot.POST("/boards/:id/sequences/", s.handleSequenceCreate)
			plot.POST("/sequences/:id/delete", s.handleSequenceDelete)
			plot.POST("/boards/:id/cards/", s.handleCardCreate)
			plot.GET("/cards/:id/", s.handleCardDetail)
			plot.POST("/cards/:id/move", s.handleCardMove)
		}
	}

	return s
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the web server
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Server.Addr)
}

// fmtSeconds renders a whole-second duration as "2h05m" for templates. It
// accepts both plain and pointer values since optional durations are stored
// as *int64.
func fmtSeconds(v any) string {
	var seconds int64
	switch n := v.(type) {
	case int64:
		seconds = n
	case *int64:
		if n == nil {
			return ""
		}
		seconds = *n
	case int:
		seconds = int64(n)
	default:
		return ""
	}
	d := time.Duration(seconds) * time.Second
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}
