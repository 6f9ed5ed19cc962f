package stocks

import (
	"net/http"
	"time"

	"oysterfarm/internal/inventory/engine"
	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/gin-gonic/gin"
)

type StockService interface {
	AddStock(req engine.AddStockRequest) (*models.Stock, error)
	GetStock(id string) (*models.Stock, error)
	ListStocks(filter store.StockFilter) ([]models.Stock, error)
	UpdateStock(id string, patch engine.StockPatch) (*models.Stock, error)
	RemoveStock(id string, performedBy string) error
	TransferStock(req engine.TransferRequest) (*engine.TransferResult, error)
}

type StockHandler struct {
	service StockService
}

func NewStockHandler(service StockService) *StockHandler {
	return &StockHandler{service: service}
}

func (h *StockHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/stocks", h.CreateStock)
	router.GET("/stocks", h.GetStocks)
	router.GET("/stocks/:id", h.GetStock)
	router.PATCH("/stocks/:id", h.UpdateStock)
	router.DELETE("/stocks/:id", h.DeleteStock)
	router.POST("/stocks/:id/transfer", h.TransferStock)
}

func (h *StockHandler) CreateStock(c *gin.Context) {
	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	unit, err := metadata.NewUnit(req.Unit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid unit of measure", "details": err.Error()})
		return
	}

	arrival := time.Time{}
	if req.ArrivalDate != nil {
		arrival = *req.ArrivalDate
	}

	stock, err := h.service.AddStock(engine.AddStockRequest{
		ProductID:   req.ProductID,
		LocationID:  req.LocationID,
		Quantity:    req.Quantity,
		Unit:        unit,
		BatchNumber: req.BatchNumber,
		ArrivalDate: arrival,
		ExpiryDate:  req.ExpiryDate,
		Notes:       req.Notes,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		abortWithError(c, err, "Could not create stock")
		return
	}

	c.JSON(http.StatusCreated, stock)
}

func (h *StockHandler) GetStocks(c *gin.Context) {
	var query struct {
		ProductID  *string `form:"product_id"`
		LocationID *string `form:"location_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	stocks, err := h.service.ListStocks(store.StockFilter{
		ProductID:  query.ProductID,
		LocationID: query.LocationID,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}

	c.JSON(http.StatusOK, stocks)
}

func (h *StockHandler) GetStock(c *gin.Context) {
	stock, err := h.service.GetStock(c.Param("id"))
	if err != nil {
		abortWithError(c, err, "Could not get stock")
		return
	}

	c.JSON(http.StatusOK, stock)
}

func (h *StockHandler) UpdateStock(c *gin.Context) {
	var req PatchStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	stock, err := h.service.UpdateStock(c.Param("id"), engine.StockPatch{
		Quantity:    req.Quantity,
		BatchNumber: req.BatchNumber,
		ArrivalDate: req.ArrivalDate,
		ExpiryDate:  req.ExpiryDate,
		Notes:       req.Notes,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		abortWithError(c, err, "Could not update stock")
		return
	}

	c.JSON(http.StatusOK, stock)
}

func (h *StockHandler) DeleteStock(c *gin.Context) {
	if err := h.service.RemoveStock(c.Param("id"), c.Query("performed_by")); err != nil {
		abortWithError(c, err, "Could not delete stock")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock deleted successfully"})
}

func (h *StockHandler) TransferStock(c *gin.Context) {
	var req TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	result, err := h.service.TransferStock(engine.TransferRequest{
		StockID:          c.Param("id"),
		TargetLocationID: req.TargetLocationID,
		Quantity:         req.Quantity,
		PerformedBy:      req.PerformedBy,
	})
	if err != nil {
		abortWithError(c, err, "Could not transfer stock")
		return
	}

	c.JSON(http.StatusOK, result)
}

func abortWithError(c *gin.Context, err error, message string) {
	switch err.(type) {
	case *custom_error.ValidationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message, "details": err.Error()})
	case *custom_error.NotFoundError:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": message, "details": err.Error()})
	case *custom_error.ConflictError:
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": message, "details": err.Error()})
	case *custom_error.InvariantViolationError:
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": message, "details": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
