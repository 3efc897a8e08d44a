package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedByID uint           `json:"created_by_id" gorm:"not null;index"`
	StartTime   *time.Time     `json:"start_time,omitempty"`
	EndTime     *time.Time     `json:"end_time,omitempty"`
	Duration    uint           `json:"duration" gorm:"not null;default:60"` // minutes
	MaxAttempts uint           `json:"max_attempts" gorm:"not null;default:1"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
