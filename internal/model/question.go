package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType enumerates the supported question formats.
type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "MCQ" // multiple choice
	QuestionTypeTrueFalse   QuestionType = "TF"
	QuestionTypeShortAnswer QuestionType = "SA"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ExamID      uint           `json:"exam_id" gorm:"not null;index"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	Type        QuestionType   `json:"type" gorm:"type:varchar(3);not null;default:'MCQ'"`
	Points      uint           `json:"points" gorm:"not null;default:1"`
	Explanation string         `json:"explanation,omitempty" gorm:"type:text"`
	Choices     []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
