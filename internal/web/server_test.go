package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwise/writertools/internal/config"
	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/models"
)

// setupServer boots the web server against a fresh in-memory database.
func setupServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, db.Initialize(":memory:"))
	t.Cleanup(func() {
		require.NoError(t, db.Close())
		db.DB = nil
	})

	cfg := config.DefaultConfig()
	cfg.Server.TemplateGlob = "../../web/templates/*.html"
	return NewServer(cfg)
}

func createWebUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	user, err := db.CreateUser(username, "", password)
	require.NoError(t, err)
	return user
}

// login performs the login form POST and returns the session cookie.
func login(t *testing.T, s *Server, username, password string) *http.Cookie {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/accounts/login/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func get(s *Server, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func postForm(s *Server, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestAnonymousRedirectedToLogin(t *testing.T) {
	s := setupServer(t)

	w := get(s, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/accounts/login/")

	w = get(s, "/track/stats/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestLoginLogout(t *testing.T) {
	s := setupServer(t)
	createWebUser(t, "alice", "long-enough-password")

	cookie := login(t, s, "alice", "long-enough-password")

	w := get(s, "/", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")

	// Wrong password never issues a cookie.
	form := url.Values{"username": {"alice"}, "password": {"nope"}}
	resp := postForm(s, "/accounts/login/", form, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = postForm(s, "/accounts/logout/", nil, cookie)
	assert.Equal(t, http.StatusFound, resp.Code)

	// The token is revoked server-side, not just the cookie cleared.
	w = get(s, "/", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestSessionTimerWorkflow(t *testing.T) {
	s := setupServer(t)
	user := createWebUser(t, "alice", "long-enough-password")
	cookie := login(t, s, "alice", "long-enough-password")

	// GET without an id never creates a record, it bounces home.
	w := get(s, "/track/session/", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	sessions, err := db.ListSessions(user.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	// POST starts a session and redirects to its timer page.
	w = postForm(s, "/track/session/", nil, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/track/session/"), location)

	// The timer page is a plain read: refreshing does not create records.
	w = get(s, location, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	w = get(s, location, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	sessions, err = db.ListSessions(user.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].InProgress())

	// Starting again creates a second independent session.
	w = postForm(s, "/track/session/", nil, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	sessions, err = db.ListSessions(user.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestSessionTimerCrossUserIsNotFound(t *testing.T) {
	s := setupServer(t)
	alice := createWebUser(t, "alice", "long-enough-password")
	createWebUser(t, "mallory", "long-enough-password")

	aliceSession, err := db.StartTimerSession(alice.ID, time.Now())
	require.NoError(t, err)

	cookie := login(t, s, "mallory", "long-enough-password")
	path := "/track/session/" + strconv.FormatUint(uint64(aliceSession.ID), 10) + "/"
	w := get(s, path, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogWorkValidation(t *testing.T) {
	s := setupServer(t)
	createWebUser(t, "alice", "long-enough-password")
	cookie := login(t, s, "alice", "long-enough-password")

	// Word count outside bounds is rejected at the form boundary.
	form := url.Values{
		"startdate": {"2024-03-01"},
		"wordcount": {"1000000"},
	}
	w := postForm(s, "/track/log_work/", form, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unparseable date too.
	form = url.Values{"startdate": {"yesterday"}}
	w = postForm(s, "/track/log_work/", form, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogWorkCreatesSession(t *testing.T) {
	s := setupServer(t)
	user := createWebUser(t, "alice", "long-enough-password")
	cookie := login(t, s, "alice", "long-enough-password")

	form := url.Values{
		"startdate": {"2024-03-01"},
		"starttime": {"09:00"},
		"enddate":   {"2024-03-01"},
		"endtime":   {"10:15"},
		"wordcount": {"750"},
		"activity":  {"drafting"},
	}
	w := postForm(s, "/track/log_work/", form, cookie)
	assert.Equal(t, http.StatusFound, w.Code)

	sessions, err := db.ListSessions(user.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].DurationSeconds)
	assert.Equal(t, int64(75*60), *sessions[0].DurationSeconds)
	require.NotNil(t, sessions[0].WordCount)
	assert.Equal(t, 750, *sessions[0].WordCount)
}

func TestLogWorkFinalizesTimerSession(t *testing.T) {
	s := setupServer(t)
	user := createWebUser(t, "alice", "long-enough-password")
	cookie := login(t, s, "alice", "long-enough-password")

	session, err := db.StartTimerSession(user.ID, time.Now())
	require.NoError(t, err)

	form := url.Values{
		"session":   {strconv.FormatUint(uint64(session.ID), 10)},
		"startdate": {"2024-03-01"},
		"duration":  {"45"},
		"wordcount": {"500"},
		"activity":  {"editing"},
	}
	w := postForm(s, "/track/log_work/", form, cookie)
	assert.Equal(t, http.StatusFound, w.Code)

	sessions, err := db.ListSessions(user.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1, "finalizing must update, not create")
	require.NotNil(t, sessions[0].DurationSeconds)
	assert.Equal(t, int64(45*60), *sessions[0].DurationSeconds)
	assert.Equal(t, "editing", sessions[0].Activity)
}

func TestStatsPage(t *testing.T) {
	s := setupServer(t)
	user := createWebUser(t, "alice", "long-enough-password")
	cookie := login(t, s, "alice", "long-enough-password")

	words := 300
	_, err := db.LogWork(db.LogWorkRequest{
		UserID:    user.ID,
		StartDate: models.DateOf(time.Now()).AddDate(0, 0, -1),
		WordCount: &words,
	})
	require.NoError(t, err)

	w := get(s, "/track/stats/", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "300")

	w = get(s, "/track/stats/?from=2020-01-01&to=2030-01-01", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBoardPages(t *testing.T) {
	s := setupServer(t)
	createWebUser(t, "alice", "long-enough-password")
	cookie := login(t, s, "alice", "long-enough-password")

	w := get(s, "/plot/", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	form := url.Values{"name": {"Act One"}, "per_row": {"3"}}
	w = postForm(s, "/plot/create/", form, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	boardPath := w.Header().Get("Location")

	w = get(s, boardPath, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Act One")

	w = postForm(s, boardPath+"sequences/", url.Values{"name": {"Opening"}}, cookie)
	assert.Equal(t, http.StatusFound, w.Code)

	w = get(s, boardPath, cookie)
	assert.Contains(t, w.Body.String(), "Opening")
}

func TestBoardCrossUserIsNotFound(t *testing.T) {
	s := setupServer(t)
	alice := createWebUser(t, "alice", "long-enough-password")
	createWebUser(t, "mallory", "long-enough-password")

	board, err := db.CreateBoard(db.CreateBoardRequest{OwnerID: alice.ID, Name: "Private"})
	require.NoError(t, err)

	cookie := login(t, s, "mallory", "long-enough-password")
	w := get(s, boardURL(board.ID), cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
