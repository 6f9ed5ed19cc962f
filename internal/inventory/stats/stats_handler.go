package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	aggregator *Aggregator
}

func NewStatsHandler(aggregator *Aggregator) *StatsHandler {
	return &StatsHandler{aggregator: aggregator}
}

func (h *StatsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/inventory/stats", h.GetStats)
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	snapshot, err := h.aggregator.Collect(time.Now())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect inventory stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
