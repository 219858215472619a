package handler

import (
	"context"
	"net/http"

	"todo/internal/job"

	"github.com/gin-gonic/gin"
)

type Sweeper interface {
	Sweep(ctx context.Context) (job.Summary, error)
}

type JobHandler struct {
	sweeper Sweeper
}

func NewJobHandler(sweeper Sweeper) *JobHandler {
	return &JobHandler{sweeper: sweeper}
}

// Autoclose godoc
// @Summary      Close every overdue task now
// @Tags         Jobs
// @Produce      json
// @Success      200  {object}  job.Summary
// @Failure      500  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /jobs/autoclose [post]
func (h *JobHandler) Autoclose(c *gin.Context) {
	summary, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
