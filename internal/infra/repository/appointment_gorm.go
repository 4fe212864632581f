package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/domain/rate"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// activeScope filters to appointments that actually hold their slot:
// confirmed, or pending and still inside the payment-hold window.
func activeScope(q *gorm.DB, holdCutoff time.Time) *gorm.DB {
	return q.Where(
		"(status = ? OR (status = ? AND created_at > ?))",
		string(domain.StatusConfirmed),
		string(domain.StatusPending),
		holdCutoff,
	)
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateExclusive(
	ctx context.Context,
	ap *models.Appointment,
	holdCutoff time.Time,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		q := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("start_time < ? AND end_time > ?", ap.EndTime, ap.StartTime)

		if err := activeScope(q, holdCutoff).Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})

	// Losers of a cross-instance race are stopped by the exclusion
	// constraint rather than the locked read.
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) RescheduleExclusive(
	ctx context.Context,
	ap *models.Appointment,
	start time.Time,
	end time.Time,
	holdCutoff time.Time,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		q := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id <> ?", ap.ID).
			Where("start_time < ? AND end_time > ?", end, start)

		if err := activeScope(q, holdCutoff).Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		ap.StartTime = start
		ap.EndTime = end
		return tx.Save(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// --------------------------------------------------
// Appointment (lookup / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
	holdCutoff time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	q := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status", "created_at").
		Where("start_time < ? AND end_time > ?", dayEnd, dayStart)

	if err := activeScope(q, holdCutoff).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("start_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_time < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := q.
		Order("start_time ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Hourly rate
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateRate(
	ctx context.Context,
	rate *models.HourlyRate,
) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *AppointmentGormRepository) CurrentRate(
	ctx context.Context,
	now time.Time,
) (*models.HourlyRate, error) {

	var current models.HourlyRate
	if err := r.db.WithContext(ctx).
		Where("effective_from <= ?", now).
		Order("effective_from DESC").
		First(&current).Error; err != nil {
		return nil, err
	}

	return &current, nil
}

// Compile-time checks
var (
	_ domain.Repository = (*AppointmentGormRepository)(nil)
	_ rate.Repository   = (*AppointmentGormRepository)(nil)
)
