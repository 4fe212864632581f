package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veritalaw/consult-scheduler/internal/audit"
	"github.com/veritalaw/consult-scheduler/internal/config"
	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/handlers"
	"github.com/veritalaw/consult-scheduler/internal/infra/cache"
	infraRepo "github.com/veritalaw/consult-scheduler/internal/infra/repository"
	"github.com/veritalaw/consult-scheduler/internal/middleware"
	"github.com/veritalaw/consult-scheduler/internal/notify"
	"github.com/veritalaw/consult-scheduler/internal/payment"
	ucAppointment "github.com/veritalaw/consult-scheduler/internal/usecase/appointment"
	ucRate "github.com/veritalaw/consult-scheduler/internal/usecase/rate"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	pol domain.WorkingHoursPolicy,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)
	rateCache := cache.NewRateCache(cfg.RedisAddr)

	gateway := payment.NewRazorpayGateway(
		cfg.RazorpayKeyID,
		cfg.RazorpayKeySecret,
		cfg.GatewayTimeoutSec,
	)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
	notifyDispatcher := notify.NewDispatcher(mailer)

	// ======================================================
	// USE CASES (RATES)
	// ======================================================
	getRateUC := ucRate.NewGetCurrentRate(repo, rateCache)
	setRateUC := ucRate.NewSetRate(repo, rateCache, auditDispatcher)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(repo, pol)

	createBookingUC := ucAppointment.NewCreateBooking(
		repo,
		getRateUC,
		gateway,
		pol,
		auditDispatcher,
		notifyDispatcher,
	)

	verifyPaymentUC := ucAppointment.NewVerifyPayment(
		repo,
		gateway,
		auditDispatcher,
		notifyDispatcher,
	)

	cancelUC := ucAppointment.NewCancelAppointment(repo, pol, auditDispatcher, notifyDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(repo, pol, auditDispatcher)
	noShowUC := ucAppointment.NewMarkNoShow(repo, pol, auditDispatcher)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(repo, pol, auditDispatcher, notifyDispatcher)
	listUC := ucAppointment.NewListAppointments(repo)
	listMonthUC := ucAppointment.NewListAppointmentsByMonth(repo, pol)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		createBookingUC,
		verifyPaymentUC,
		getRateUC,
		pol,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		cancelUC,
		completeUC,
		noShowUC,
		rescheduleUC,
		listUC,
		listMonthUC,
		repo,
		auditDispatcher,
		pol,
	)

	rateHandler := handlers.NewRateHandler(setRateUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", bookingHandler.Availability)
			publicAPI.POST("/appointments", bookingHandler.Create)
			publicAPI.POST("/appointments/verify-payment", bookingHandler.VerifyPayment)
			publicAPI.GET("/hourly-rate", bookingHandler.GetRate)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.PUT("/hourly-rate", rateHandler.Update)
				admin.DELETE("/appointments/:id", appointmentHandler.Delete)
			}
		}
	}
}
