package db

import (
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/veritalaw/consult-scheduler/internal/config"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.HourlyRate{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The overlap-exclusion constraint is the cross-instance guarantee
	// that two bookings can never hold intersecting [start,end) ranges
	// while both count as booked. The locked re-check in the repository
	// handles the common case; this closes the race between instances.
	// The columns migrate as timestamptz, hence tstzrange. Starting
	// without the constraint would silently drop the guarantee, so any
	// install failure other than "already exists" is fatal.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to install btree_gist extension: %v", err)
	}
	if err := db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('pending', 'confirmed'))
    `).Error; err != nil && !isDuplicateObject(err) {
		log.Fatalf("failed to install overlap-exclusion constraint: %v", err)
	}

	return db
}

// isDuplicateObject reports whether err is Postgres duplicate_object,
// i.e. the constraint survived from a previous start.
func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42710"
}
