package api

import (
	"net/http"

	"dogcatify-core/internal/handler/httperr"
	"dogcatify-core/internal/usecase/jobs"

	"github.com/gin-gonic/gin"
)

// JobsHandler exposes the batch jobs to the external scheduler. One call,
// one batch; the scheduler owns the cadence.
type JobsHandler struct {
	sweeper    jobs.ExpirationSweeper
	dispatcher jobs.NotificationDispatcher
}

func NewJobsHandler(sweeper jobs.ExpirationSweeper, dispatcher jobs.NotificationDispatcher) *JobsHandler {
	return &JobsHandler{sweeper: sweeper, dispatcher: dispatcher}
}

// @Summary Expire stale orders
// @Description Cancel one batch of orders stuck unpaid past the timeout
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Router /jobs/expire-orders [post]
func (h *JobsHandler) ExpireOrders(c *gin.Context) {
	result, err := h.sweeper.Run(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sweep failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scanned":   result.Scanned,
		"cancelled": result.Cancelled,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
	})
}

// @Summary Dispatch notifications
// @Description Deliver one batch of due scheduled notifications
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Router /jobs/dispatch-notifications [post]
func (h *JobsHandler) DispatchNotifications(c *gin.Context) {
	result, err := h.dispatcher.Run(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Dispatch failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"drained": result.Drained,
		"sent":    result.Sent,
		"retried": result.Retried,
		"failed":  result.Failed,
	})
}
