package model

import (
	"time"

	"gorm.io/gorm"
)

// Participant is one user's enrollment in one exam, scoped by attempt number.
type Participant struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_exam_attempt"`
	User           User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ExamID         uint           `json:"exam_id" gorm:"not null;uniqueIndex:idx_user_exam_attempt;index"`
	Exam           Exam           `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	Score          float64        `json:"score" gorm:"not null;default:0"`
	Rank           *uint          `json:"rank,omitempty"`
	CurrentAttempt uint           `json:"current_attempt" gorm:"not null;default:1;uniqueIndex:idx_user_exam_attempt"`
	StartedAt      *time.Time     `json:"started_at,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
