package models

import (
	"gorm.io/gorm"
)

const SettingDefaultMeetingLink = "default_meeting_link"

// AdminSetting is a key/value row per admin, upserted on conflict.
type AdminSetting struct {
	gorm.Model
	AdminUserID  uint   `gorm:"column:admin_user_id;not null;uniqueIndex:uniq_admin_setting" json:"admin_user_id"`
	SettingKey   string `gorm:"column:setting_key;size:100;not null;uniqueIndex:uniq_admin_setting" json:"setting_key"`
	SettingValue string `gorm:"column:setting_value;type:text;not null" json:"setting_value"`

	Admin *User `gorm:"foreignKey:AdminUserID" json:"-"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}
