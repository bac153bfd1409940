package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/scheduler-web/internal/config"
	"github.com/BruksfildServices01/scheduler-web/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testCfg = &config.Config{SessionSecret: "test-secret"}

func visitorEngine() *gin.Engine {
	r := gin.New()
	r.Use(VisitorMiddleware(testCfg))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, VisitorID(c))
	})
	return r
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == VisitorCookie {
			return ck
		}
	}
	return nil
}

func TestVisitorIssuesAndReusesCookie(t *testing.T) {
	r := visitorEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	id := w.Body.String()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	ck := sessionCookie(w)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(ck)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Body.String())
	assert.Nil(t, sessionCookie(w), "valid cookie is not reissued")
}

func TestVisitorRejectsForeignSignature(t *testing.T) {
	token, err := signVisitor(uuid.NewString(), []byte("other-secret"), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: token})
	w := httptest.NewRecorder()
	visitorEngine().ServeHTTP(w, req)

	assert.NotNil(t, sessionCookie(w))
}

func TestVisitorRejectsExpired(t *testing.T) {
	id := uuid.NewString()
	token, err := signVisitor(id, []byte(testCfg.SessionSecret), time.Now().Add(-2*visitorTTL))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: token})
	w := httptest.NewRecorder()
	visitorEngine().ServeHTTP(w, req)

	assert.NotEqual(t, id, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
}

func TestRateLimitOnlyFormPosts(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(NewRateLimiter(0.0001, 1)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/form/change", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(method, path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/"))
	assert.Equal(t, http.StatusTooManyRequests, do(http.MethodPost, "/"))
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/"))
	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/form/change"))
}

func TestRateLimitCookielessPostsShareIPBucket(t *testing.T) {
	r := gin.New()
	r.Use(VisitorMiddleware(testCfg), RateLimitMiddleware(NewRateLimiter(0.0001, 2)))
	r.POST("/agendamentos", func(c *gin.Context) { c.Status(http.StatusSeeOther) })

	post := func(ck *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/agendamentos", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		if ck != nil {
			req.AddCookie(ck)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := post(nil)
	require.Equal(t, http.StatusSeeOther, first.Code)
	assert.Equal(t, http.StatusSeeOther, post(nil).Code)

	limited := 0
	for i := 0; i < 20; i++ {
		if post(nil).Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 20, limited, "a fresh cookie per request must not reset the bucket")

	// a browser that keeps its cookie has its own bucket
	ck := sessionCookie(first)
	require.NotNil(t, ck)
	assert.Equal(t, http.StatusSeeOther, post(ck).Code)
}

func TestNewVisitorFlag(t *testing.T) {
	r := gin.New()
	r.Use(VisitorMiddleware(testCfg))
	r.GET("/", func(c *gin.Context) {
		if NewVisitor(c) {
			c.String(http.StatusOK, "new")
			return
		}
		c.String(http.StatusOK, "known")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "new", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(w))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "known", w.Body.String())
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Allow("a")

	rl.Sweep(time.Now())
	assert.Len(t, rl.clients, 1)

	rl.Sweep(time.Now().Add(time.Hour))
	assert.Empty(t, rl.clients)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/api/validate", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/validate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := logging.NewZapLogger(zap.New(core).Sugar())

	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLogMiddleware(logger))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "/missing", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.Equal(t, w.Header().Get(HeaderRequestID), fields["request_id"])
}
