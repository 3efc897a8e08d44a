package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ChoiceResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	Order      uint   `json:"order"`
}

type QuestionResponse struct {
	ID          uint             `json:"id"`
	ExamID      uint             `json:"exam_id"`
	Text        string           `json:"text"`
	Type        string           `json:"type"`
	Points      uint             `json:"points"`
	Explanation string           `json:"explanation,omitempty"`
	Choices     []ChoiceResponse `json:"choices,omitempty"`
}

type ExamResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	IsActive    bool               `json:"is_active"`
	CreatedByID uint               `json:"created_by_id"`
	StartTime   *time.Time         `json:"start_time,omitempty"`
	EndTime     *time.Time         `json:"end_time,omitempty"`
	Duration    uint               `json:"duration"`
	MaxAttempts uint               `json:"max_attempts"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type ParticipantResponse struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	ExamID         uint       `json:"exam_id"`
	Score          float64    `json:"score"`
	Rank           *uint      `json:"rank,omitempty"`
	CurrentAttempt uint       `json:"current_attempt"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type AnswerResponse struct {
	ID            uint      `json:"id"`
	ParticipantID uint      `json:"participant_id"`
	QuestionID    uint      `json:"question_id"`
	ChoiceID      *uint     `json:"choice_id,omitempty"`
	TextAnswer    string    `json:"text_answer,omitempty"`
	IsCorrect     bool      `json:"is_correct"`
	ResponseTime  uint      `json:"response_time"`
	AnsweredAt    time.Time `json:"answered_at"`
}
