package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-be/internal/middleware"
	"bookly-be/internal/models"
	"bookly-be/internal/service"
)

type BookingController struct {
	bookingService service.BookingService
}

func NewBookingController(bookingService service.BookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// Index handles GET /api/v1/bookings - the caller's bookings
func (bc *BookingController) Index(c *gin.Context) {
	bookings, err := bc.bookingService.ListMine(middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// AdminIndex handles GET /api/v1/admin/bookings - every booking
func (bc *BookingController) AdminIndex(c *gin.Context) {
	bookings, err := bc.bookingService.ListAll(middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// Store handles POST /api/v1/bookings
func (bc *BookingController) Store(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := bc.bookingService.Create(middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Service booked successfully",
		"data":    booking,
	})
}

// UpdateStatus handles PUT /api/v1/admin/bookings/:id/status
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := bc.bookingService.UpdateStatus(middleware.ActorFromContext(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"data":    booking,
	})
}
