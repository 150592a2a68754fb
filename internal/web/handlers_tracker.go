package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/models"
	"github.com/inkwise/writertools/internal/parser"
)

func (s *Server) handleDashboard(c *gin.Context) {
	user := currentUser(c)

	summary, err := db.SummaryForUser(user.ID, time.Now())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"user":         user,
		"user_summary": summary.Context(),
	})
}

// logWorkContext assembles everything the log-work form needs: the user's
// in-progress projects, the suggested activities, and initial values.
func (s *Server) logWorkContext(c *gin.Context, user *models.User) (gin.H, error) {
	projects, err := db.ActiveProjects(user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ctx := gin.H{
		"user":       user,
		"projects":   projects,
		"activities": models.StandardActivities(),
		"initial": gin.H{
			"startdate": now.Format("2006-01-02"),
			"enddate":   now.Format("2006-01-02"),
			"starttime": now.Format("15:04"),
			"endtime":   now.Format("15:04"),
		},
	}
	return ctx, nil
}

func (s *Server) handleLogWorkPage(c *gin.Context) {
	user := currentUser(c)

	ctx, err := s.logWorkContext(c, user)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	// The timer page links here with its session id so the form closes out
	// that session instead of creating a new record.
	if sessionStr := c.Query("session"); sessionStr != "" {
		sessionID, err := strconv.ParseUint(sessionStr, 10, 32)
		if err != nil {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Session not found"})
			return
		}
		session, err := db.GetUserSession(user.ID, uint(sessionID))
		if err != nil {
			s.renderLookupError(c, err)
			return
		}
		ctx["session"] = session
		initial := ctx["initial"].(gin.H)
		initial["startdate"] = session.StartDate.Format("2006-01-02")
		if session.StartTime != nil {
			initial["starttime"] = session.StartTime.String()
		}
	}

	c.HTML(http.StatusOK, "log_work.html", ctx)
}

func (s *Server) handleLogWork(c *gin.Context) {
	user := currentUser(c)

	req, err := parseLogWorkForm(c, user.ID)
	if err != nil {
		ctx, ctxErr := s.logWorkContext(c, user)
		if ctxErr != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": ctxErr.Error()})
			return
		}
		ctx["error"] = err.Error()
		c.HTML(http.StatusBadRequest, "log_work.html", ctx)
		return
	}

	if sessionStr := c.PostForm("session"); sessionStr != "" {
		sessionID, err := strconv.ParseUint(sessionStr, 10, 32)
		if err != nil {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Session not found"})
			return
		}
		if _, err := db.FinishSession(user.ID, uint(sessionID), req); err != nil {
			s.renderLookupError(c, err)
			return
		}
	} else {
		if _, err := db.LogWork(req); err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
			return
		}
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) handleStats(c *gin.Context) {
	user := currentUser(c)

	summary, err := db.SummaryForUser(user.ID, time.Now())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	sessions, err := db.ListSessions(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	ctx := gin.H{
		"user":         user,
		"user_summary": summary.Context(),
		"sessions":     sessions,
	}

	// Optional ?from=YYYY-MM-DD&to=YYYY-MM-DD half-open range.
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := parser.ParseDate(fromStr)
		if err == nil {
			var to time.Time
			if to, err = parser.ParseDate(toStr); err == nil {
				rangeStats, err := db.SummaryForRange(user.ID, from, to)
				if err != nil {
					c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
					return
				}
				ctx["range_stats"] = rangeStats
				ctx["range_from"] = fromStr
				ctx["range_to"] = toStr
			}
		}
		if err != nil {
			ctx["error"] = err.Error()
		}
	}

	c.HTML(http.StatusOK, "stats.html", ctx)
}

// handleSessionStart is the entry point of the session timer workflow. A POST
// with no id creates an in-progress session and redirects to its timer page,
// so refreshing that page never creates another record. GET requests are sent
// back to the dashboard untouched.
func (s *Server) handleSessionStart(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusFound, "/")
		return
	}

	user := currentUser(c)
	session, err := db.StartTimerSession(user.ID, time.Now())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/track/session/"+strconv.FormatUint(uint64(session.ID), 10)+"/")
}

func (s *Server) handleSessionTimer(c *gin.Context) {
	user := currentUser(c)

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Session not found"})
		return
	}

	session, err := db.GetUserSession(user.ID, uint(sessionID))
	if err != nil {
		s.renderLookupError(c, err)
		return
	}

	c.HTML(http.StatusOK, "session_timer.html", gin.H{
		"user":        user,
		"worksession": session,
	})
}

// renderLookupError maps service errors onto pages. Records owned by other
// users come back as ErrNotFound and render as 404, which is exactly what we
// want to disclose.
func (s *Server) renderLookupError(c *gin.Context, err error) {
	if errors.Is(err, db.ErrNotFound) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Not found"})
		return
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
}
