package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/timezone"
	ucAppointment "github.com/veritalaw/consult-scheduler/internal/usecase/appointment"
	ucRate "github.com/veritalaw/consult-scheduler/internal/usecase/rate"
	"github.com/veritalaw/consult-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler is the public booking surface: availability lookup,
// booking creation and payment confirmation.
type BookingHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateBooking
	verifyUC       *ucAppointment.VerifyPayment
	rateUC         *ucRate.GetCurrentRate
	pol            domain.WorkingHoursPolicy
}

func NewBookingHandler(
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateBooking,
	verifyUC *ucAppointment.VerifyPayment,
	rateUC *ucRate.GetCurrentRate,
	pol domain.WorkingHoursPolicy,
) *BookingHandler {
	return &BookingHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		verifyUC:       verifyUC,
		rateUC:         rateUC,
		pol:            pol,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Date          string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"` // HH:mm
	DurationHours int    `json:"duration_hours" binding:"required,min=1"`
	Notes         string `json:"notes"`
}

type VerifyPaymentRequest struct {
	AppointmentID     uint   `json:"appointment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	loc := h.pol.Location()
	if tz := c.Query("tz"); tz != "" {
		loc = timezone.Location(tz)
	}

	date, err := parseDateIn(dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{Date: date},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	if !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	result, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateBookingInput{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.StartTime,
			DurationHours: req.DurationHours,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ======================================================
// VERIFY PAYMENT
// ======================================================

func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment confirmation data.")
		return
	}

	ap, err := h.verifyUC.Execute(
		c.Request.Context(),
		ucAppointment.VerifyPaymentInput{
			AppointmentID: req.AppointmentID,
			OrderID:       req.RazorpayOrderID,
			PaymentID:     req.RazorpayPaymentID,
			Signature:     req.RazorpaySignature,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// ======================================================
// CURRENT RATE
// ======================================================

func (h *BookingHandler) GetRate(c *gin.Context) {
	rate, err := h.rateUC.Execute(c.Request.Context(), time.Now())
	if err != nil {
		httperr.NotFound(c, "rate_not_configured", "No consultation rate configured.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rate_paise":     rate.RatePaise,
		"currency":       rate.Currency,
		"effective_from": rate.EffectiveFrom,
	})
}
