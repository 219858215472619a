package handler

import (
	"net/http"

	"todo/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"project not found"`
}

// statusFor maps a service error to an HTTP status: missing resources are
// 404, rejected input or exhausted limits are 400, the rest is 500.
func statusFor(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		// store failures are logged, not echoed
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
}
