package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
	"github.com/Rajankit27/FakeNewsDetection/internal/session"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

// Context keys set by SessionMiddleware.
const (
	KeyBrowserID   = "browser_id"
	KeyBinding     = "binding"
	KeyPreferences = "preferences"
)

const cookieMaxAge = 365 * 24 * 60 * 60

// SessionMiddleware identifies the browser from its signed cookie, issuing a
// new one when absent or invalid, and loads its session and preferences.
func SessionMiddleware(store session.Store, cookies *session.Cookies, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		browserID := ""
		if raw, err := c.Cookie(cookies.Name); err == nil {
			if id, err := cookies.Parse(raw); err == nil {
				browserID = id
			} else {
				logger.Debug("Discarding invalid browser cookie", zap.Error(err))
			}
		}

		if browserID == "" {
			id, value, err := cookies.Issue()
			if err != nil {
				logger.Error("Failed to issue browser cookie", zap.Error(err))
				c.String(http.StatusInternalServerError, "Failed to start session")
				c.Abort()
				return
			}
			browserID = id
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookies.Name, value, cookieMaxAge, "/", "", cookies.Secure, true)
		}

		sess, err := store.Get(c.Request.Context(), browserID)
		if err != nil {
			logger.Error("Failed to load session", zap.String("browser_id", browserID), zap.Error(err))
			sess = models.Session{}
		}
		prefs, err := store.Preferences(c.Request.Context(), browserID)
		if err != nil {
			logger.Error("Failed to load preferences", zap.String("browser_id", browserID), zap.Error(err))
			prefs = models.DefaultPreferences()
		}

		c.Set(KeyBrowserID, browserID)
		c.Set(KeyBinding, session.Bind(store, browserID, sess))
		c.Set(KeyPreferences, prefs)
		c.Next()
	}
}

// RequireAuth sends anonymous browsers to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Binding(c).Session().Authenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin sends anonymous browsers to login and other users back to the
// dashboard with a notice.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Binding(c).Session()
		if !sess.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !sess.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/?notice="+view.NoticeAdminRequired)
			c.Abort()
			return
		}
		c.Next()
	}
}

func BrowserID(c *gin.Context) string {
	return c.GetString(KeyBrowserID)
}

// Binding returns the request's session binding. Outside SessionMiddleware it
// is an empty binding that cannot revoke anything.
func Binding(c *gin.Context) *session.Binding {
	if v, ok := c.Get(KeyBinding); ok {
		if b, ok := v.(*session.Binding); ok {
			return b
		}
	}
	return session.Bind(session.NewMemoryStore(), "", models.Session{})
}

func Preferences(c *gin.Context) models.Preferences {
	if v, ok := c.Get(KeyPreferences); ok {
		if p, ok := v.(models.Preferences); ok {
			return p
		}
	}
	return models.DefaultPreferences()
}
