package dto

// RegisterUserRequest creates a new user account.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN PARTICIPANT"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest patches a user; zero-value fields are left untouched.
type UpdateUserRequest struct {
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	IsActive *bool   `json:"is_active,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN PARTICIPANT"`
}

// RegisterParticipantRequest enrolls the authenticated user in an exam.
type RegisterParticipantRequest struct {
	ExamID uint `json:"exam_id" binding:"required"`
}

// SubmitAnswerRequest submits one choice for one question.
type SubmitAnswerRequest struct {
	QuestionID   uint   `json:"question_id" binding:"required"`
	ChoiceID     uint   `json:"choice_id" binding:"required"`
	TextAnswer   string `json:"text_answer,omitempty"`
	ResponseTime uint   `json:"response_time,omitempty"`
}
