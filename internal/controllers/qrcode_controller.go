package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"bookly-be/internal/middleware"
	"bookly-be/internal/service"
)

type QRCodeController struct {
	bookingService service.BookingService
}

func NewQRCodeController(bookingService service.BookingService) *QRCodeController {
	return &QRCodeController{
		bookingService: bookingService,
	}
}

// GenerateBookingQRCode handles GET /api/v1/bookings/:id/qrcode - renders a
// check-in code for a booking the caller owns (or any booking, for admins)
func (qc *QRCodeController) GenerateBookingQRCode(c *gin.Context) {
	booking, err := qc.bookingService.Get(middleware.ActorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	payload := fmt.Sprintf("bookly:booking:%s", booking.ID)

	// 256x256 pixels, medium error recovery
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
