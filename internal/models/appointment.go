package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours int       `json:"duration_hours"`

	AmountPaise int64  `json:"amount_paise"`
	Currency    string `gorm:"size:3;default:'INR'" json:"currency"`

	Status        string `gorm:"size:20;default:'pending';index" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'awaiting_payment'" json:"payment_status"`

	RazorpayOrderID   string `gorm:"size:100;index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `gorm:"size:100" json:"razorpay_payment_id,omitempty"`

	MeetingLink  string `gorm:"size:255" json:"meeting_link,omitempty"`
	Notes        string `gorm:"size:500" json:"notes"`
	CancelReason string `gorm:"size:255" json:"cancel_reason,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
