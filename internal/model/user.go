package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is the capability level attached to a user account.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleParticipant Role = "PARTICIPANT"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Username  string         `json:"username" gorm:"not null;uniqueIndex"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash
	Role      Role           `json:"role" gorm:"type:varchar(12);not null;default:'PARTICIPANT'"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
