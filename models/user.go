package models

import (
	"time"
)

// Roles a user can hold. Role changes go through the admin user routes only.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User model for authentication
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:user" json:"role"`
	DateJoined   time.Time `gorm:"autoCreateTime" json:"dateJoined"`
}

func (User) TableName() string {
	return "users"
}
