package locations

import (
	"net/http"

	"oysterfarm/internal/inventory/engine"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/gin-gonic/gin"
)

type LocationService interface {
	CreateLocation(req engine.CreateLocationRequest) (*models.StorageLocation, error)
	GetLocation(id string) (*models.StorageLocation, error)
	ListLocations() ([]models.StorageLocation, error)
	UpdateLocation(id string, patch engine.LocationPatch) (*models.StorageLocation, error)
	DeleteLocation(id string) error
}

type LocationHandler struct {
	service LocationService
}

func NewLocationHandler(service LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/locations", h.CreateLocation)
	router.GET("/locations", h.GetLocations)
	router.GET("/locations/:id", h.GetLocation)
	router.PATCH("/locations/:id", h.UpdateLocation)
	router.DELETE("/locations/:id", h.RemoveLocation)
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.service.ListLocations()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	location, err := h.service.GetLocation(c.Param("id"))
	if err != nil {
		abortWithError(c, err, "Could not get location")
		return
	}

	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	storageType, err := metadata.NewStorageType(req.Type)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid storage type", "details": err.Error()})
		return
	}

	location, err := h.service.CreateLocation(engine.CreateLocationRequest{
		Name:                req.Name,
		Type:                storageType,
		Capacity:            req.Capacity,
		CurrentTemperature:  req.CurrentTemperature,
		IdealMinTemperature: req.IdealMinTemperature,
		IdealMaxTemperature: req.IdealMaxTemperature,
	})
	if err != nil {
		abortWithError(c, err, "Could not create location")
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var req PatchLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	patch := engine.LocationPatch{
		Name:                req.Name,
		Capacity:            req.Capacity,
		CurrentTemperature:  req.CurrentTemperature,
		IdealMinTemperature: req.IdealMinTemperature,
		IdealMaxTemperature: req.IdealMaxTemperature,
	}
	if req.Type != nil {
		storageType, err := metadata.NewStorageType(*req.Type)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid storage type", "details": err.Error()})
			return
		}
		patch.Type = &storageType
	}

	location, err := h.service.UpdateLocation(c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err, "Could not update location")
		return
	}

	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) RemoveLocation(c *gin.Context) {
	if err := h.service.DeleteLocation(c.Param("id")); err != nil {
		abortWithError(c, err, "Could not delete location")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
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
