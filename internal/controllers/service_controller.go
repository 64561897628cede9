package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-be/internal/middleware"
	"bookly-be/internal/models"
	"bookly-be/internal/service"
)

type ServiceController struct {
	catalog service.CatalogService
}

func NewServiceController(catalog service.CatalogService) *ServiceController {
	return &ServiceController{
		catalog: catalog,
	}
}

// Index handles GET /api/v1/services - active services only
func (sc *ServiceController) Index(c *gin.Context) {
	services, err := sc.catalog.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services})
}

// AdminIndex handles GET /api/v1/admin/services - every service
func (sc *ServiceController) AdminIndex(c *gin.Context) {
	services, err := sc.catalog.ListAll(middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services})
}

// Store handles POST /api/v1/services
func (sc *ServiceController) Store(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := sc.catalog.Create(middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Service created successfully",
		"data":    created,
	})
}

// Update handles PUT /api/v1/services/:id
func (sc *ServiceController) Update(c *gin.Context) {
	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := sc.catalog.Update(middleware.ActorFromContext(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"data":    updated,
	})
}

// Destroy handles DELETE /api/v1/services/:id
func (sc *ServiceController) Destroy(c *gin.Context) {
	if err := sc.catalog.Delete(middleware.ActorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service deleted successfully",
	})
}
