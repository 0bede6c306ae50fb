package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aqarpress/middleware"
	"aqarpress/models"
	"aqarpress/repositories"
	"aqarpress/services"
	"aqarpress/translations"
)

type PropertyController struct {
	properties *services.PropertyService
	log        *zap.Logger
}

func NewPropertyController(properties *services.PropertyService, log *zap.Logger) *PropertyController {
	return &PropertyController{properties: properties, log: log}
}

// POST /properties
func (pc *PropertyController) Create(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := pc.properties.CreateProperty(c.Request.Context(), &req, middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repositories.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			pc.log.Error("property creation failed", zap.String("slug", req.Slug), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Property created successfully"})
}

// GET /properties/:slug
func (pc *PropertyController) GetBySlug(c *gin.Context) {
	property, err := pc.properties.GetProperty(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		pc.log.Error("property lookup failed", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	typeLabel, _ := translations.PropertyType(property.PropertyType)
	statusLabel, _ := translations.PropertyStatus(property.Status)
	c.JSON(http.StatusOK, gin.H{
		"property":     property,
		"type_label":   typeLabel,
		"status_label": statusLabel,
	})
}

// GET /properties?city=&type=&status=&min_price=&max_price=&page=&per_page=
func (pc *PropertyController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	minPrice, _ := strconv.ParseFloat(c.DefaultQuery("min_price", "0"), 64)
	maxPrice, _ := strconv.ParseFloat(c.DefaultQuery("max_price", "0"), 64)

	filter := models.PropertyFilter{
		City:         c.Query("city"),
		PropertyType: c.Query("type"),
		Status:       c.Query("status"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
	}

	properties, total, err := pc.properties.ListProperties(c.Request.Context(), filter, page, perPage)
	if err != nil {
		pc.log.Error("property listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties, "total": total, "page": page})
}

// DELETE /properties/:id
func (pc *PropertyController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	if err := pc.properties.DeleteProperty(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		pc.log.Error("property deletion failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
