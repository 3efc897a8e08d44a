package service

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ExamService serves the read-side: exam listings with filters, detail views
// with questions and choices, and the public active-exam list.
type ExamService interface {
	GetAllExams(search string, isActive *bool, limit, offset int) ([]dto.ExamResponse, error)
	GetExamDetails(id uint) (*dto.ExamResponse, error)
	GetActiveExams() ([]dto.ExamResponse, error)
	GetQuestions(examID *uint, limit, offset int) ([]dto.QuestionResponse, error)
	GetChoices(questionID *uint, limit, offset int) ([]dto.ChoiceResponse, error)
	GetParticipants(examID *uint, limit, offset int) ([]dto.ParticipantResponse, error)
}

type examService struct {
	examRepo        repository.ExamRepository
	questionRepo    repository.QuestionRepository
	choiceRepo      repository.ChoiceRepository
	participantRepo repository.ParticipantRepository
}

func NewExamService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	choiceRepo repository.ChoiceRepository,
	participantRepo repository.ParticipantRepository,
) ExamService {
	return &examService{
		examRepo:        examRepo,
		questionRepo:    questionRepo,
		choiceRepo:      choiceRepo,
		participantRepo: participantRepo,
	}
}

func (s *examService) GetAllExams(search string, isActive *bool, limit, offset int) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindAll(search, isActive, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("GetAllExams: repository error")
		return nil, err
	}
	resp := make([]dto.ExamResponse, 0, len(exams))
	if err := copier.Copy(&resp, &exams); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *examService) GetExamDetails(id uint) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, model.ErrExamNotFound
	}
	var resp dto.ExamResponse
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetActiveExams is the public listing: active exams, newest first.
func (s *examService) GetActiveExams() ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindActive()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ExamResponse, 0, len(exams))
	if err := copier.Copy(&resp, &exams); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *examService) GetQuestions(examID *uint, limit, offset int) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindAll(examID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *examService) GetChoices(questionID *uint, limit, offset int) ([]dto.ChoiceResponse, error) {
	choices, err := s.choiceRepo.FindAll(questionID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ChoiceResponse, 0, len(choices))
	if err := copier.Copy(&resp, &choices); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *examService) GetParticipants(examID *uint, limit, offset int) ([]dto.ParticipantResponse, error) {
	participants, err := s.participantRepo.FindAll(examID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ParticipantResponse, 0, len(participants))
	if err := copier.Copy(&resp, &participants); err != nil {
		return nil, err
	}
	return resp, nil
}
