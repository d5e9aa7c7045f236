package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcubed/cubed/internal/testutil"
)

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/wheel/words/list/json", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/wheel/words/list/json", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("short and stout"), entry["size"])
}

func TestRecoveryUsesHandler(t *testing.T) {
	var recovered any
	handler := Recovery(testutil.NopLogger(), func(w http.ResponseWriter, r *http.Request, err any) {
		recovered = err
		w.WriteHeader(http.StatusServiceUnavailable)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "boom", recovered)
}

func TestRateLimitPerClient(t *testing.T) {
	limiter := NewIPLimiter(2, time.Minute)
	handler := RateLimit(limiter, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login/json", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5000").Code)
	limited := call("10.0.0.1:5001")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))

	// Another client has its own budget
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:5000").Code)
}

func TestIPLimiterDropsIdleClients(t *testing.T) {
	limiter := NewIPLimiter(2, time.Minute)
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	now = now.Add(30 * time.Second)
	assert.True(t, limiter.Allow("10.0.0.2"))
	assert.Len(t, limiter.limiters, 2)

	// One window after the first client was last seen it is swept; the second is kept
	now = now.Add(45 * time.Second)
	assert.True(t, limiter.Allow("10.0.0.3"))
	assert.Len(t, limiter.limiters, 2)
	assert.NotContains(t, limiter.limiters, "10.0.0.1")
	assert.Contains(t, limiter.limiters, "10.0.0.2")

	// A returning client starts with a full bucket
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestSessionToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, SessionToken(req))

	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
	assert.Equal(t, "from-cookie", SessionToken(req))

	req.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", SessionToken(req))
}

func TestSessionCookieLifecycle(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login/json", nil)
	rec := httptest.NewRecorder()
	expires := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

	SetSessionCookie(rec, req, "tok", expires, time.Hour)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
