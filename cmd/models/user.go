package models

import (
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

type User struct {
	gorm.Model
	FullName     string `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Email        string `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role         string `gorm:"column:role;size:50;not null;default:admin" json:"role"`
}

func (User) TableName() string {
	return "users"
}
