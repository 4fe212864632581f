package models

import "time"

// HourlyRate rows are insert-only. The current rate is the row with the
// latest effective_from at or before now; superseded rows stay for the
// audit trail of already-priced appointments.
type HourlyRate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RatePaise     int64     `gorm:"not null" json:"rate_paise"`
	Currency      string    `gorm:"size:3;default:'INR'" json:"currency"`
	EffectiveFrom time.Time `gorm:"index;not null" json:"effective_from"`

	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
