package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/scheduler-web/internal/config"
)

const (
	ContextVisitorID  = "visitorID"
	ContextVisitorNew = "visitorNew"

	VisitorCookie = "agendamentos_session"
	visitorTTL    = 30 * 24 * time.Hour
)

// VisitorMiddleware identifies the browser with a signed cookie holding a
// random visitor id. Missing, expired or tampered cookies get a new id.
func VisitorMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.SessionSecret)

	return func(c *gin.Context) {
		visitorID, ok := parseVisitor(c, secret)
		if !ok {
			visitorID = uuid.NewString()
			token, err := signVisitor(visitorID, secret, time.Now())
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_error"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, token, int(visitorTTL.Seconds()), "/", "", cfg.IsProduction(), true)
			c.Set(ContextVisitorNew, true)
		}

		c.Set(ContextVisitorID, visitorID)
		c.Next()
	}
}

func parseVisitor(c *gin.Context, secret []byte) (string, bool) {
	raw, err := c.Cookie(VisitorCookie)
	if err != nil || raw == "" {
		return "", false
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", false
	}
	if _, err := uuid.Parse(sub); err != nil {
		return "", false
	}
	return sub, true
}

func signVisitor(visitorID string, secret []byte, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": visitorID,
		"iat": now.Unix(),
		"exp": now.Add(visitorTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VisitorID returns the id set by VisitorMiddleware.
func VisitorID(c *gin.Context) string {
	return c.GetString(ContextVisitorID)
}

// NewVisitor reports whether the visitor id was minted on this request.
func NewVisitor(c *gin.Context) bool {
	return c.GetBool(ContextVisitorNew)
}
