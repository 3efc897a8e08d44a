package model

import (
	"time"

	"gorm.io/gorm"
)

type Choice struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	IsCorrect  bool           `json:"is_correct" gorm:"default:false"`
	Order      uint           `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
