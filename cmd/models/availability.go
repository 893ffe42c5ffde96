package models

import (
	"gorm.io/gorm"
)

// AvailabilitySlot is a recurring weekly window. Times of day are stored as
// zero-padded "HH:MM" strings so lexicographic order matches clock order.
type AvailabilitySlot struct {
	gorm.Model
	AdminUserID         uint   `gorm:"column:admin_user_id;not null" json:"admin_user_id"`
	DayOfWeek           int    `gorm:"column:day_of_week;not null" json:"day_of_week"`
	StartTime           string `gorm:"column:start_time;size:5;not null" json:"start_time"`
	EndTime             string `gorm:"column:end_time;size:5;not null" json:"end_time"`
	SlotDurationMinutes int    `gorm:"column:slot_duration_minutes;not null;default:30" json:"slot_duration_minutes"`
	IsActive            bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`

	Admin *User `gorm:"foreignKey:AdminUserID" json:"-"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

// BlockedDate removes a whole calendar date from availability regardless of
// any matching slots. Dates are "YYYY-MM-DD" strings.
type BlockedDate struct {
	gorm.Model
	AdminUserID uint    `gorm:"column:admin_user_id;not null" json:"admin_user_id"`
	BlockedDate string  `gorm:"column:blocked_date;size:10;not null;uniqueIndex" json:"blocked_date"`
	Reason      *string `gorm:"column:reason;type:text" json:"reason,omitempty"`

	Admin *User `gorm:"foreignKey:AdminUserID" json:"-"`
}

func (BlockedDate) TableName() string {
	return "blocked_dates"
}
