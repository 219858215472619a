package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo/internal/logging"
	"todo/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	r := gin.New()
	r.Use(middleware.ErrorLogger(logging.NewWithWriter(&logs, "info", "logfmt")))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("disk full"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(resp, req)
	assert.Empty(t, logs.String())

	resp = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, logs.String(), "disk full")
	assert.Contains(t, logs.String(), "/boom")
}
