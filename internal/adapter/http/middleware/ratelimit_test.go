package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
)

type countingRecorder struct {
	hits int
}

func (r *countingRecorder) RecordRateLimitHit(string) {
	r.hits++
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/api/contacts", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func hit(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zerolog.Nop(), nil)
	rl.SetRule("GET /api/contacts", RateLimitRule{Requests: 3, Window: time.Minute})
	router := newLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		rr := hit(router)
		Expect(rr.Code).To(Equal(http.StatusOK))
	}
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	RegisterTestingT(t)

	recorder := &countingRecorder{}
	rl := NewRateLimiter(zerolog.Nop(), recorder)
	rl.SetRule("GET /api/contacts", RateLimitRule{Requests: 2, Window: time.Minute})
	router := newLimitedRouter(rl)

	hit(router)
	hit(router)
	rr := hit(router)

	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	Expect(rr.Body.String()).To(ContainSubstring("rate limit exceeded"))
	Expect(recorder.hits).To(Equal(1))
}

func TestRateLimiter_SetsInformativeHeaders(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zerolog.Nop(), nil)
	rl.SetRule("GET /api/contacts", RateLimitRule{Requests: 5, Window: time.Minute})
	router := newLimitedRouter(rl)

	rr := hit(router)

	Expect(rr.Header().Get("X-RateLimit-Limit")).To(Equal("5"))
	Expect(rr.Header().Get("X-RateLimit-Remaining")).To(Equal("4"))
	Expect(rr.Header().Get("X-RateLimit-Reset")).ToNot(BeEmpty())
}

func TestRateLimiter_WindowResetsAllowance(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zerolog.Nop(), nil)
	rl.SetRule("GET /api/contacts", RateLimitRule{Requests: 1, Window: 10 * time.Millisecond})
	router := newLimitedRouter(rl)

	Expect(hit(router).Code).To(Equal(http.StatusOK))
	Expect(hit(router).Code).To(Equal(http.StatusTooManyRequests))

	time.Sleep(20 * time.Millisecond)

	Expect(hit(router).Code).To(Equal(http.StatusOK))
}
