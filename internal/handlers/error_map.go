package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/veritalaw/consult-scheduler/internal/httperr"
)

// mapBookingError translates business error codes from the booking use
// cases into structured HTTP failures.
func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Slot no longer available. Re-check availability and retry.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Bookings must be placed at least a day in advance.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case httperr.IsBusiness(err, "invalid_duration"):
		httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number of slots.")
	case httperr.IsBusiness(err, "invalid_start_time"):
		httperr.BadRequest(c, "invalid_start_time", "Start time must fall on a slot boundary.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Requested range is outside working hours.")
	case httperr.IsBusiness(err, "blackout_day"):
		httperr.BadRequest(c, "blackout_day", "The firm does not take consultations on that day.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "The appointment is not in a state that allows this operation.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "payment_verification_failed"):
		httperr.BadRequest(c, "payment_verification_failed", "Payment could not be verified.")
	case httperr.IsBusiness(err, "gateway_unavailable"):
		httperr.ServiceUnavailable(c, "gateway_unavailable", "Payment gateway unavailable. Please retry.")
	case httperr.IsBusiness(err, "rate_not_configured"):
		httperr.ServiceUnavailable(c, "rate_not_configured", "Consultation rate is not configured.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
