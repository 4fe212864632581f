package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/veritalaw/consult-scheduler/internal/audit"
	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/httpresp"
	"github.com/veritalaw/consult-scheduler/internal/middleware"
	ucAppointment "github.com/veritalaw/consult-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler is the staff surface for managing the calendar.
type AppointmentHandler struct {
	createUC     *ucAppointment.CreateBooking
	cancelUC     *ucAppointment.CancelAppointment
	completeUC   *ucAppointment.CompleteAppointment
	noShowUC     *ucAppointment.MarkNoShow
	rescheduleUC *ucAppointment.RescheduleAppointment
	listUC       *ucAppointment.ListAppointments
	listMonthUC  *ucAppointment.ListAppointmentsByMonth

	repo  domain.Repository
	audit *audit.Dispatcher
	pol   domain.WorkingHoursPolicy
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateBooking,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	noShowUC *ucAppointment.MarkNoShow,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	listUC *ucAppointment.ListAppointments,
	listMonthUC *ucAppointment.ListAppointmentsByMonth,
	repo domain.Repository,
	audit *audit.Dispatcher,
	pol domain.WorkingHoursPolicy,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		noShowUC:     noShowUC,
		rescheduleUC: rescheduleUC,
		listUC:       listUC,
		listMonthUC:  listMonthUC,
		repo:         repo,
		audit:        audit,
		pol:          pol,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StaffCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required,min=1"`
	Notes         string `json:"notes"`
	BypassPayment bool   `json:"bypass_payment"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type RescheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	loc := h.pol.Location()

	f := domain.ListFilter{
		Status: c.Query("status"),
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseDateIn(fromStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid from date.")
			return
		}
		f.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := parseDateIn(toStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid to date.")
			return
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.Page(c, items, httpresp.Pagination{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
	})
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	appointments, err := h.listMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// CREATE (STAFF)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	var req StaffCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	// skipping payment is an admin privilege, never inferred from the
	// request shape
	if req.BypassPayment && role != middleware.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Only admins may bypass payment.")
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
			BypassPayment: req.BypassPayment,
			ActorID:       &userID,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req) // reason is optional

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, req.Reason, userID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and start time are required.")
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		ucAppointment.RescheduleInput{
			AppointmentID: id,
			Date:          req.Date,
			Time:          req.StartTime,
			ActorID:       userID,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// NO-SHOW
// ======================================================

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.noShowUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE (ADMIN)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetAppointment(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Failed to delete appointment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
