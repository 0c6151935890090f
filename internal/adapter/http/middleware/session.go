package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pirayth/gardenshop/configs"
)

const sessionCtxKey = "session_id"

// Session identifies the anonymous browsing session that owns a cart slot.
// The session id travels in a signed HS256 cookie; a missing or invalid
// cookie silently gets a fresh session (and therefore an empty cart) rather
// than an error. This is session integrity, not user authentication.
type Session struct {
	cfg configs.Config
}

func NewSession(cfg configs.Config) *Session {
	return &Session{cfg: cfg}
}

func (s *Session) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := s.fromCookie(c)
		if sid == "" {
			sid = uuid.NewString()
			s.setCookie(c, sid)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

func (s *Session) fromCookie(c *gin.Context) string {
	raw, err := c.Cookie(s.cfg.Session.CookieName)
	if err != nil || raw == "" {
		return ""
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.Session.Secret), nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func (s *Session) setCookie(c *gin.Context, sid string) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.Session.TTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return
	}
	c.SetCookie(s.cfg.Session.CookieName, signed, int(s.cfg.Session.TTL.Seconds()), "/", "", false, true)
}

// SessionID returns the session id attached by Session.Attach.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
