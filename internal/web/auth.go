package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/models"
)

const (
	sessionCookie = "wt_session"
	cookieMaxAge  = 30 * 24 * 60 * 60 // 30 days
)

// requireUser resolves the login cookie to a user, redirecting anonymous
// requests to the login page with a next parameter.
func (s *Server) requireUser(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err == nil {
		if user, err := db.UserForToken(token); err == nil {
			c.Set("user", user)
			c.Next()
			return
		}
	}

	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/accounts/login/?next="+next)
	c.Abort()
}

// currentUser returns the user attached by requireUser.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}

func (s *Server) handleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"next": c.Query("next"),
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := db.Authenticate(username, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Invalid username or password.",
			"next":  c.PostForm("next"),
		})
		return
	}

	token, err := db.CreateAuthToken(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(sessionCookie, token.Token, cookieMaxAge, "/", "", false, true)

	next := c.PostForm("next")
	if next == "" || next[0] != '/' {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (s *Server) handleLogout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		// Best effort; an already-gone token still logs you out.
		_ = db.DeleteAuthToken(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/accounts/login/")
}
