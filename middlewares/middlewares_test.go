package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-api/utils"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	r := newEngine(rl.RateLimit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// a second later one token is back
	frozen = frozen.Add(time.Second)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.limiterFor("10.0.0.1")
	now = now.Add(rl.idleTTL + time.Second)
	rl.limiterFor("10.0.0.2")

	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(CORSMiddlewares("https://cafes.example"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://cafes.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := newEngine(SecurityHeaders())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRedactQuery(t *testing.T) {
	assert.Equal(t, "/report-closed/3?api-key=REDACTED", redactQuery("/report-closed/3?api-key=TopSecretApiKey"))
	assert.Equal(t, "/search?loc=Peckham", redactQuery("/search?loc=Peckham"))
	assert.Equal(t, "/all", redactQuery("/all"))

	// queries url.ParseQuery rejects are dropped whole
	assert.Equal(t, "/report-closed/1?REDACTED", redactQuery("/report-closed/1?api-key=TopSecretApiKey&x=a;b"))
	assert.Equal(t, "/report-closed/1?REDACTED", redactQuery("/report-closed/1?api-key=TopSecretApiKey&x=%zz"))
	assert.Equal(t, "/report-closed/1?REDACTED", redactQuery("/report-closed/1?x=%zz&api-key=TopSecretApiKey"))
}

func TestLoggerMiddlewareRedactsKey(t *testing.T) {
	logger, hook := test.NewNullLogger()
	utils.InfoLogger = logger

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), LoggerMiddleware())
	r.GET("/report-closed/:cafe_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/report-closed/1?api-key=TopSecretApiKey", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "/report-closed/1?api-key=REDACTED", entry.Message)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.NotEmpty(t, entry.Data["request_id"])
}

func TestDeletionAuditMiddleware(t *testing.T) {
	infoLogger, infoHook := test.NewNullLogger()
	errorLogger, errorHook := test.NewNullLogger()
	utils.InfoLogger = infoLogger
	utils.ErrorLogger = errorLogger

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/report-closed/:cafe_id", DeletionAuditMiddleware(), func(c *gin.Context) {
		if c.Query("api-key") != "ok" {
			c.Status(http.StatusForbidden)
			return
		}
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/report-closed/5?api-key=ok", nil))
	require.NotNil(t, infoHook.LastEntry())
	assert.Equal(t, "cafe reported closed", infoHook.LastEntry().Message)
	assert.Equal(t, "5", infoHook.LastEntry().Data["cafe_id"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/report-closed/5?api-key=bad", nil))
	require.NotNil(t, errorHook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, errorHook.LastEntry().Level)
}
