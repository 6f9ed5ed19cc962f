package products

import (
	"net/http"

	"oysterfarm/internal/inventory/engine"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/gin-gonic/gin"
)

type ProductService interface {
	CreateProduct(req engine.CreateProductRequest) (*models.Product, error)
	GetProduct(id string) (*models.Product, error)
	ListProducts() ([]models.Product, error)
	UpdateProduct(id string, patch engine.ProductPatch) (*models.Product, error)
	DeleteProduct(id string) error
}

type ProductHandler struct {
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/products", h.CreateProduct)
	router.GET("/products", h.GetProducts)
	router.GET("/products/:id", h.GetProduct)
	router.PATCH("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.RemoveProduct)
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.service.ListProducts()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list products", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProduct(c.Param("id"))
	if err != nil {
		abortWithError(c, err, "Could not get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	category, err := metadata.NewProductCategory(req.Category)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid product category", "details": err.Error()})
		return
	}
	unit, err := metadata.NewUnit(req.Unit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid unit of measure", "details": err.Error()})
		return
	}

	product, err := h.service.CreateProduct(engine.CreateProductRequest{
		Name:           req.Name,
		Category:       category,
		Unit:           unit,
		AlertThreshold: req.AlertThreshold,
	})
	if err != nil {
		abortWithError(c, err, "Could not create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req PatchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	patch := engine.ProductPatch{
		Name:           req.Name,
		AlertThreshold: req.AlertThreshold,
	}
	if req.Category != nil {
		category, err := metadata.NewProductCategory(*req.Category)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid product category", "details": err.Error()})
			return
		}
		patch.Category = &category
	}
	if req.Unit != nil {
		unit, err := metadata.NewUnit(*req.Unit)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid unit of measure", "details": err.Error()})
			return
		}
		patch.Unit = &unit
	}

	product, err := h.service.UpdateProduct(c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err, "Could not update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) RemoveProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Param("id")); err != nil {
		abortWithError(c, err, "Could not delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
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
