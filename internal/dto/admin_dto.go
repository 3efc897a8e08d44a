package dto

import "time"

// ChoiceCreateDTO is used within QuestionCreateDTO and on its own endpoint.
type ChoiceCreateDTO struct {
	QuestionID uint   `json:"question_id"` // required on the standalone endpoint
	Text       string `json:"text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	Order      uint   `json:"order"`
}

// QuestionCreateDTO is used within ExamCreateDTO and on its own endpoint.
type QuestionCreateDTO struct {
	ExamID      uint              `json:"exam_id"` // required on the standalone endpoint
	Text        string            `json:"text" binding:"required"`
	Type        string            `json:"type" binding:"omitempty,oneof=MCQ TF SA"`
	Points      uint              `json:"points" binding:"required,gt=0"`
	Explanation string            `json:"explanation,omitempty"`
	Choices     []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

// ExamCreateDTO is for admins to create an exam, optionally with questions.
type ExamCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
	StartTime   *time.Time          `json:"start_time,omitempty"`
	EndTime     *time.Time          `json:"end_time,omitempty"`
	Duration    uint                `json:"duration" binding:"omitempty,min=1"`
	MaxAttempts uint                `json:"max_attempts" binding:"omitempty,min=1"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// ExamUpdateDTO patches exam metadata; nil fields are left untouched.
type ExamUpdateDTO struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *uint      `json:"duration,omitempty" binding:"omitempty,min=1"`
	MaxAttempts *uint      `json:"max_attempts,omitempty" binding:"omitempty,min=1"`
}

// QuestionUpdateDTO patches question text, type, points or explanation.
type QuestionUpdateDTO struct {
	Text        *string `json:"text,omitempty"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=MCQ TF SA"`
	Points      *uint   `json:"points,omitempty" binding:"omitempty,gt=0"`
	Explanation *string `json:"explanation,omitempty"`
}

// ChoiceUpdateDTO patches choice text, correctness or display order.
type ChoiceUpdateDTO struct {
	Text      *string `json:"text,omitempty"`
	IsCorrect *bool   `json:"is_correct,omitempty"`
	Order     *uint   `json:"order,omitempty"`
}
