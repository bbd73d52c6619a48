package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/arogyaventures/opd-server/config"
)

func newRateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit", RateLimiter(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func postSubmit(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	r.ServeHTTP(w, req)
	return w
}

// httptest requests always come from 192.0.2.1.
func submitKey() string {
	return fmt.Sprintf("ratelimit:%s:%s", "/submit", "192.0.2.1")
}

func TestRateLimiter_AllowsWithoutRedis(t *testing.T) {
	config.SetRedisClientForTesting(nil)
	t.Cleanup(func() { config.SetRedisClientForTesting(nil) })

	r := newRateLimitedRouter(RateLimitConfig{Limit: 1, Window: time.Minute})
	assert.Equal(t, http.StatusOK, postSubmit(r).Code)
	assert.Equal(t, http.StatusOK, postSubmit(r).Code)
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTesting(client)
	t.Cleanup(func() { config.SetRedisClientForTesting(nil) })

	mock.ExpectIncr(submitKey()).SetVal(1)
	mock.ExpectExpire(submitKey(), time.Minute).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})
	assert.Equal(t, http.StatusOK, postSubmit(r).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTesting(client)
	t.Cleanup(func() { config.SetRedisClientForTesting(nil) })

	mock.ExpectIncr(submitKey()).SetVal(3)
	mock.ExpectExpire(submitKey(), time.Minute).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})
	w := postSubmit(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A redis outage must never block the desk; the request proceeds.
func TestRateLimiter_FailsOpenOnRedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTesting(client)
	t.Cleanup(func() { config.SetRedisClientForTesting(nil) })

	mock.ExpectIncr(submitKey()).SetErr(errors.New("connection refused"))

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})
	assert.Equal(t, http.StatusOK, postSubmit(r).Code)
}

func TestRateLimiter_DefaultsApplied(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTesting(client)
	t.Cleanup(func() { config.SetRedisClientForTesting(nil) })

	// Zero-value config falls back to 60 requests per minute.
	mock.ExpectIncr(submitKey()).SetVal(60)
	mock.ExpectExpire(submitKey(), time.Minute).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{})
	assert.Equal(t, http.StatusOK, postSubmit(r).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetRateLimit_WithoutRedis(t *testing.T) {
	config.SetRedisClientForTesting(nil)
	assert.Error(t, ResetRateLimit("192.0.2.1", "/submit"))
}

func TestResetRateLimit_DeletesKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTesting(client)
	t.Cleanup(func() { config.SetRedisClientForTesting(nil) })

	mock.ExpectDel(submitKey()).SetVal(1)
	assert.NoError(t, ResetRateLimit("192.0.2.1", "/submit"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
