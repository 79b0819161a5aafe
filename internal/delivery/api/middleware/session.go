package middleware

import (
	"net/http"
	"time"

	"jewelshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderXSessionID carries the anonymous cart session.
	HeaderXSessionID = "X-Session-Id"
	// SessionCookieName is the cookie alternative to HeaderXSessionID.
	SessionCookieName = "session_id"

	contextKeySessionID = "sessionID"
	maxSessionIDLength  = 128
)

// SessionMiddleware resolves the anonymous session used for guest carts.
type SessionMiddleware struct {
	cookieTTL time.Duration
}

// NewSessionMiddleware creates the session middleware. The cookie lives as long as a cart.
func NewSessionMiddleware(cookieTTL time.Duration) *SessionMiddleware {
	return &SessionMiddleware{cookieTTL: cookieTTL}
}

// Process reads the session id from the header or cookie, minting one when absent,
// and echoes it back so clients can keep it.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Request().Header.Get(HeaderXSessionID)
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				sessionID = cookie.Value
			}
		}
		if sessionID == "" || len(sessionID) > maxSessionIDLength {
			sessionID = uuid.NewString()
		}

		c.Set(contextKeySessionID, sessionID)
		c.Response().Header().Set(HeaderXSessionID, sessionID)
		c.SetCookie(&http.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(m.cookieTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return next(c)
	}
}

// GetSessionID returns the session resolved by SessionMiddleware.
func GetSessionID(c echo.Context) string {
	sessionID, _ := c.Get(contextKeySessionID).(string)

	return sessionID
}

// CartIdentity prefers the authenticated user over the anonymous session.
func CartIdentity(c echo.Context) entity.CartIdentity {
	if userID, ok := GetUserID(c); ok {
		return entity.UserIdentity(userID)
	}

	return entity.SessionIdentity(GetSessionID(c))
}
