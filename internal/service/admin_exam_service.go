package service

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminExamService covers the admin-only CRUD surface for exams, questions,
// choices and participant removal. Role checks happen at the routing layer.
type AdminExamService interface {
	CreateExam(createdByID uint, req dto.ExamCreateDTO) (*dto.ExamResponse, error)
	UpdateExam(id uint, req dto.ExamUpdateDTO) (*dto.ExamResponse, error)
	DeleteExam(id uint) error
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
	CreateChoice(req dto.ChoiceCreateDTO) (*dto.ChoiceResponse, error)
	UpdateChoice(id uint, req dto.ChoiceUpdateDTO) (*dto.ChoiceResponse, error)
	DeleteChoice(id uint) error
	DeleteParticipant(id uint) error
}

type adminExamService struct {
	examRepo        repository.ExamRepository
	questionRepo    repository.QuestionRepository
	choiceRepo      repository.ChoiceRepository
	participantRepo repository.ParticipantRepository
}

func NewAdminExamService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	choiceRepo repository.ChoiceRepository,
	participantRepo repository.ParticipantRepository,
) AdminExamService {
	return &adminExamService{
		examRepo:        examRepo,
		questionRepo:    questionRepo,
		choiceRepo:      choiceRepo,
		participantRepo: participantRepo,
	}
}

func (s *adminExamService) CreateExam(createdByID uint, req dto.ExamCreateDTO) (*dto.ExamResponse, error) {
	exam := model.Exam{
		Title:       req.Title,
		Description: req.Description,
		IsActive:    true,
		CreatedByID: createdByID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    60,
		MaxAttempts: 1,
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if req.Duration > 0 {
		exam.Duration = req.Duration
	}
	if req.MaxAttempts > 0 {
		exam.MaxAttempts = req.MaxAttempts
	}

	for _, q := range req.Questions {
		question := model.Question{
			Text:        q.Text,
			Type:        model.QuestionTypeMCQ,
			Points:      q.Points,
			Explanation: q.Explanation,
		}
		if q.Type != "" {
			question.Type = model.QuestionType(q.Type)
		}
		for _, c := range q.Choices {
			question.Choices = append(question.Choices, model.Choice{
				Text:      c.Text,
				IsCorrect: c.IsCorrect,
				Order:     c.Order,
			})
		}
		exam.Questions = append(exam.Questions, question)
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateExam: failed to create exam")
		return nil, err
	}
	log.Info().Uint("examID", exam.ID).Int("questions", len(exam.Questions)).Msg("Exam created")

	return s.examResponse(&exam)
}

func (s *adminExamService) UpdateExam(id uint, req dto.ExamUpdateDTO) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		return nil, model.ErrExamNotFound
	}
	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if req.StartTime != nil {
		exam.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		exam.EndTime = req.EndTime
	}
	if req.Duration != nil {
		exam.Duration = *req.Duration
	}
	if req.MaxAttempts != nil {
		exam.MaxAttempts = *req.MaxAttempts
	}
	if err := s.examRepo.Update(exam); err != nil {
		return nil, err
	}
	return s.examResponse(exam)
}

// DeleteExam removes the exam; questions, choices, participants and answers
// cascade at the database level.
func (s *adminExamService) DeleteExam(id uint) error {
	if _, err := s.examRepo.FindByID(id); err != nil {
		return model.ErrExamNotFound
	}
	return s.examRepo.Delete(id)
}

func (s *adminExamService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponse, error) {
	if _, err := s.examRepo.FindByID(req.ExamID); err != nil {
		return nil, model.ErrExamNotFound
	}
	question := model.Question{
		ExamID:      req.ExamID,
		Text:        req.Text,
		Type:        model.QuestionTypeMCQ,
		Points:      req.Points,
		Explanation: req.Explanation,
	}
	if req.Type != "" {
		question.Type = model.QuestionType(req.Type)
	}
	for _, c := range req.Choices {
		question.Choices = append(question.Choices, model.Choice{
			Text:      c.Text,
			IsCorrect: c.IsCorrect,
			Order:     c.Order,
		})
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, err
	}
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *adminExamService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, model.ErrQuestionNotFound
	}
	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Type != nil {
		question.Type = model.QuestionType(*req.Type)
	}
	if req.Points != nil {
		question.Points = *req.Points
	}
	if req.Explanation != nil {
		question.Explanation = *req.Explanation
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *adminExamService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		return model.ErrQuestionNotFound
	}
	return s.questionRepo.Delete(id)
}

func (s *adminExamService) CreateChoice(req dto.ChoiceCreateDTO) (*dto.ChoiceResponse, error) {
	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		return nil, model.ErrQuestionNotFound
	}
	choice := model.Choice{
		QuestionID: req.QuestionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
		Order:      req.Order,
	}
	if err := s.choiceRepo.Create(&choice); err != nil {
		return nil, err
	}
	var resp dto.ChoiceResponse
	if err := copier.Copy(&resp, &choice); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *adminExamService) UpdateChoice(id uint, req dto.ChoiceUpdateDTO) (*dto.ChoiceResponse, error) {
	choice, err := s.choiceRepo.FindByID(id)
	if err != nil {
		return nil, model.ErrChoiceNotFound
	}
	if req.Text != nil {
		choice.Text = *req.Text
	}
	if req.IsCorrect != nil {
		choice.IsCorrect = *req.IsCorrect
	}
	if req.Order != nil {
		choice.Order = *req.Order
	}
	if err := s.choiceRepo.Update(choice); err != nil {
		return nil, err
	}
	var resp dto.ChoiceResponse
	if err := copier.Copy(&resp, choice); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *adminExamService) DeleteChoice(id uint) error {
	if _, err := s.choiceRepo.FindByID(id); err != nil {
		return model.ErrChoiceNotFound
	}
	return s.choiceRepo.Delete(id)
}

func (s *adminExamService) DeleteParticipant(id uint) error {
	if _, err := s.participantRepo.FindByID(id); err != nil {
		return model.ErrParticipantNotFound
	}
	return s.participantRepo.Delete(id)
}

func (s *adminExamService) examResponse(exam *model.Exam) (*dto.ExamResponse, error) {
	var resp dto.ExamResponse
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, err
	}
	return &resp, nil
}
