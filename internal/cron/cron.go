package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

// Start schedules the two maintenance sweeps:
//   - expire pending holds whose payment never arrived, so the
//     exclusion constraint releases their slot range
//   - mark confirmed appointments as completed once their end time has
//     passed
//
// Both are also enforced at query time; the sweeps reclaim storage and
// keep listings honest.
func Start(db *gorm.DB, pol domain.WorkingHoursPolicy) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", func() { expireStaleHolds(db, pol) }); err != nil {
		log.Fatalf("failed to add hold-expiry job: %v", err)
	}
	if _, err := c.AddFunc("30 * * * *", func() { completePast(db, pol) }); err != nil {
		log.Fatalf("failed to add auto-complete job: %v", err)
	}

	c.Start()
	log.Println("maintenance jobs scheduled")
	return c
}

func expireStaleHolds(db *gorm.DB, pol domain.WorkingHoursPolicy) {
	now := time.Now().In(pol.Location())
	cutoff := pol.HoldCutoff(now)

	res := db.Model(&models.Appointment{}).
		Where(
			"status = ? AND payment_status = ? AND created_at <= ?",
			string(domain.StatusPending),
			string(domain.PaymentAwaiting),
			cutoff,
		).
		Updates(map[string]any{
			"status":         string(domain.StatusCancelled),
			"payment_status": string(domain.PaymentFailed),
			"cancel_reason":  "payment not completed in time",
			"cancelled_at":   now,
		})

	if res.Error != nil {
		log.Println("hold expiry error:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("expired %d stale pending holds", res.RowsAffected)
	}
}

func completePast(db *gorm.DB, pol domain.WorkingHoursPolicy) {
	now := time.Now().In(pol.Location())

	res := db.Model(&models.Appointment{}).
		Where(
			"status = ? AND end_time < ?",
			string(domain.StatusConfirmed),
			now,
		).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": now,
		})

	if res.Error != nil {
		log.Println("auto-complete error:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("marked %d appointments completed", res.RowsAffected)
	}
}
