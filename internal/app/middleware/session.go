package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

type contextKey string

// SessionIDKey is the gin context key holding the visitor id.
const SessionIDKey contextKey = "sessionID"

const (
	sessionName        = "northern_oak"
	keySessionID       = "sid"
	keyPage            = "page"
	keySubmittedPrefix = "submitted_"
)

// Sessions installs the signed cookie store that holds all per-visitor state.
func Sessions(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(sessionName, store)
}

// VisitorMiddleware gives every session a stable random id. It must run
// after Sessions.
func VisitorMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		s := sessions.Default(c)
		sid, _ := s.Get(keySessionID).(string)
		if sid == "" {
			sid = uuid.NewString()
			s.Set(keySessionID, sid)
			if err := s.Save(); err != nil {
				logger.Warn("Failed to save new session", zap.Error(err))
			}
		}
		c.Set(string(SessionIDKey), sid)
		c.Next()
	}
}

// SessionID returns the visitor id set by VisitorMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(string(SessionIDKey))
}

// StoredPage returns the raw page id kept in the session, or "" when none
// has been chosen yet.
func StoredPage(c *gin.Context) string {
	p, _ := sessions.Default(c).Get(keyPage).(string)
	return p
}

// SetCurrentPage records the visitor's current page.
func SetCurrentPage(c *gin.Context, p models.Page) error {
	s := sessions.Default(c)
	s.Set(keyPage, string(p))
	return s.Save()
}

// FormSubmitted reports whether the visitor's form of variant v is showing
// its confirmation.
func FormSubmitted(c *gin.Context, v models.FormVariant) bool {
	ok, _ := sessions.Default(c).Get(keySubmittedPrefix + string(v)).(bool)
	return ok
}

// SetFormSubmitted stores the confirmation flag for variant v.
func SetFormSubmitted(c *gin.Context, v models.FormVariant, submitted bool) error {
	s := sessions.Default(c)
	if submitted {
		s.Set(keySubmittedPrefix+string(v), true)
	} else {
		s.Delete(keySubmittedPrefix + string(v))
	}
	return s.Save()
}
