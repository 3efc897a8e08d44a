package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer records a single response. At most one row may exist per
// (participant, question) pair; duplicates are rejected, never overwritten.
type Answer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ParticipantID uint           `json:"participant_id" gorm:"not null;uniqueIndex:idx_participant_question"`
	Participant   Participant    `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	QuestionID    uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_participant_question"`
	Question      Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChoiceID      *uint          `json:"choice_id,omitempty"`
	Choice        *Choice        `json:"choice,omitempty" gorm:"foreignKey:ChoiceID"`
	TextAnswer    string         `json:"text_answer,omitempty" gorm:"type:text"`
	IsCorrect     bool           `json:"is_correct" gorm:"default:false"`
	Graded        bool           `json:"graded" gorm:"default:false"` // guards the score increment; set exactly once
	ResponseTime  uint           `json:"response_time" gorm:"default:0"` // seconds
	AnsweredAt    time.Time      `json:"answered_at" gorm:"autoCreateTime"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
