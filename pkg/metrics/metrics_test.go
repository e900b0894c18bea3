package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func newMeteredRouter(m *AppMetrics) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/metrics", m.Handler())
	router.GET("/api/contacts", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/api/contacts", func(c *gin.Context) { c.Status(http.StatusCreated) })
	router.POST("/api/users", func(c *gin.Context) { c.Status(http.StatusConflict) })
	router.PUT("/api/to-do-items/:id/complete", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.DELETE("/api/contacts/delete-range", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

func perform(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestGinMiddleware_CountsEntityOperations(t *testing.T) {
	RegisterTestingT(t)

	m := NewAppMetrics()
	router := newMeteredRouter(m)

	perform(router, http.MethodPost, "/api/contacts")
	perform(router, http.MethodPut, "/api/to-do-items/5/complete")
	perform(router, http.MethodDelete, "/api/contacts/delete-range")

	scrape := perform(router, http.MethodGet, "/metrics").Body.String()

	Expect(scrape).To(ContainSubstring(`entity_operations_total{entity="contacts",operation="create"} 1`))
	Expect(scrape).To(ContainSubstring(`entity_operations_total{entity="to-do-items",operation="complete"} 1`))
	Expect(scrape).To(ContainSubstring(`entity_operations_total{entity="contacts",operation="delete-range"} 1`))
}

func TestGinMiddleware_SkipsReadsAndFailures(t *testing.T) {
	RegisterTestingT(t)

	m := NewAppMetrics()
	router := newMeteredRouter(m)

	perform(router, http.MethodGet, "/api/contacts")
	perform(router, http.MethodPost, "/api/users")

	scrape := perform(router, http.MethodGet, "/metrics").Body.String()

	Expect(scrape).NotTo(ContainSubstring("entity_operations_total"))
	Expect(scrape).To(ContainSubstring(`http_requests_total{method="POST",path="/api/users",status="409"} 1`))
}
