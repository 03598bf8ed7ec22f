package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
	"github.com/Rajankit27/FakeNewsDetection/internal/session"
)

func newTestRouter(store session.Store, cookies *session.Cookies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(store, cookies, zap.NewNop()))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"browser_id": BrowserID(c),
			"username":   Binding(c).Session().Username,
			"saver":      Preferences(c).Saver,
		})
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func testCookies() *session.Cookies {
	return session.NewCookies("fnd_session", []byte("0123456789abcdef0123456789abcdef"), false)
}

func TestSessionMiddleware_IssuesCookieForNewBrowser(t *testing.T) {
	r := newTestRouter(session.NewMemoryStore(), testCookies())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.Equal(t, 1, len(cookies))
	assert.Equal(t, "fnd_session", cookies[0].Name)
	assert.Equal(t, true, cookies[0].HttpOnly)
}

func TestSessionMiddleware_LoadsExistingSession(t *testing.T) {
	store := session.NewMemoryStore()
	cookies := testCookies()
	id, value, _ := cookies.Issue()
	_ = store.Set(context.Background(), id, models.Session{Token: "t", Role: models.RoleUser, Username: "alice"})

	r := newTestRouter(store, cookies)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "fnd_session", Value: value})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, len(w.Result().Cookies()))
}

func TestSessionMiddleware_ForgedCookieIsReplaced(t *testing.T) {
	store := session.NewMemoryStore()
	forger := session.NewCookies("fnd_session", []byte("another-secret-another-secret-xx"), false)
	id, value, _ := forger.Issue()
	_ = store.Set(context.Background(), id, models.Session{Token: "t", Role: models.RoleAdmin})

	r := newTestRouter(store, testCookies())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "fnd_session", Value: value})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, 1, len(w.Result().Cookies()))
}

func TestRequireAdmin_UserGetsNotice(t *testing.T) {
	store := session.NewMemoryStore()
	cookies := testCookies()
	id, value, _ := cookies.Issue()
	_ = store.Set(context.Background(), id, models.Session{Token: "t", Role: models.RoleUser, Username: "alice"})

	r := newTestRouter(store, cookies)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "fnd_session", Value: value})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?notice=admin_required", w.Header().Get("Location"))
}

func TestBinding_OutsideMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, false, Binding(c).Session().Authenticated())
	assert.Equal(t, models.DefaultPreferences(), Preferences(c))
}
