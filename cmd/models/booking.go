package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingScheduled = "scheduled"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no-show"
)

// Booking is a candidate's reservation of one slot. Rows are never deleted;
// an admin moves a scheduled booking into one of the terminal states.
// The pair (booking_date, booking_time) is unique among non-cancelled rows,
// enforced by a partial index created during migration (see cmd/main.go).
type Booking struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CandidateName   string    `gorm:"column:candidate_name;size:100;not null" json:"candidate_name"`
	CandidateEmail  string    `gorm:"column:candidate_email;size:255;not null" json:"candidate_email"`
	CandidatePhone  *string   `gorm:"column:candidate_phone;size:20" json:"candidate_phone,omitempty"`
	RoleApplied     string    `gorm:"column:role_applied;size:100;not null" json:"role_applied"`
	Notes           *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	BookingDate     string    `gorm:"column:booking_date;size:10;not null;index" json:"booking_date"`
	BookingTime     string    `gorm:"column:booking_time;size:5;not null" json:"booking_time"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null;default:30" json:"duration_minutes"`
	Status          string    `gorm:"column:status;size:20;not null;default:scheduled" json:"status"`
	MeetingLink     *string   `gorm:"column:meeting_link;size:512" json:"meeting_link,omitempty"`
	AdminUserID     *uint     `gorm:"column:admin_user_id" json:"admin_user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
