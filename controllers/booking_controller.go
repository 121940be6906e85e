package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

// BookingUsecase is the slice of the booking service the controller needs.
type BookingUsecase interface {
	PayFee(ctx context.Context, in services.PaymentInput) (*services.BookingConfirmation, error)
	RenewFee(ctx context.Context, in services.PaymentInput) (*services.BookingConfirmation, error)
}

// BookingController serves /feePayment and /feerenewal.
type BookingController struct {
	bookings BookingUsecase
}

// NewBookingController creates a new booking controller.
func NewBookingController(bookings BookingUsecase) *BookingController {
	return &BookingController{bookings: bookings}
}

type paymentRequest struct {
	Email        string  `json:"email"`
	AmountPaid   float64 `json:"AmountPaid"`
	BookedRoomNo string  `json:"BookedRoomNo"`
	TimePeriod   int     `json:"TimePeriod"`

	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"CVV"`
}

func (r paymentRequest) input() services.PaymentInput {
	return services.PaymentInput{
		Email:        r.Email,
		AmountPaid:   r.AmountPaid,
		BookedRoomNo: r.BookedRoomNo,
		TimePeriod:   r.TimePeriod,
		CardNumber:   r.CardNumber,
		CardExpiry:   r.ExpiryDate,
		CardCVV:      r.CVV,
	}
}

// PayFee handles POST /feePayment.
func (ctl *BookingController) PayFee(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}
	if !mayActFor(c, req.Email) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Cannot pay for another user", "code": "FORBIDDEN"})
		return
	}

	confirmation, err := ctl.bookings.PayFee(c.Request.Context(), req.input())
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Payment successful and room booked",
		"bookingDetails": confirmation,
	})
}

// RenewFee handles POST /feerenewal.
func (ctl *BookingController) RenewFee(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, "Invalid request payload")
		return
	}
	if !mayActFor(c, req.Email) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Cannot pay for another user", "code": "FORBIDDEN"})
		return
	}

	confirmation, err := ctl.bookings.RenewFee(c.Request.Context(), req.input())
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Fee renewed successfully",
		"bookingDetails": confirmation,
	})
}
