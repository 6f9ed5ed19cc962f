package movements

import (
	"net/http"
	"time"

	"oysterfarm/internal/inventory/store"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/gin-gonic/gin"
)

type MovementService interface {
	ListMovements(filter store.MovementFilter) ([]models.StockMovement, error)
}

type MovementHandler struct {
	service MovementService
}

func NewMovementHandler(service MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

func (h *MovementHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/movements", h.GetMovements)
}

func (h *MovementHandler) GetMovements(c *gin.Context) {
	var query struct {
		ProductID  *string `form:"product_id"`
		LocationID *string `form:"location_id"`
		Type       string  `form:"type"`
		From       string  `form:"from"`
		To         string  `form:"to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter := store.MovementFilter{
		ProductID:  query.ProductID,
		LocationID: query.LocationID,
	}
	if query.Type != "" {
		movementType, err := metadata.NewMovementType(query.Type)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid movement type", "details": err.Error()})
			return
		}
		filter.Type = &movementType
	}
	if query.From != "" {
		from, err := time.Parse(time.RFC3339, query.From)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected RFC3339", "details": err.Error()})
			return
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.Parse(time.RFC3339, query.To)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected RFC3339", "details": err.Error()})
			return
		}
		filter.To = &to
	}

	movements, err := h.service.ListMovements(filter)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch movements"})
		return
	}

	c.JSON(http.StatusOK, movements)
}
