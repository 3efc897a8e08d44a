package service

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/task"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerService validates and persists answer submissions. Scoring is applied
// synchronously inside the insert transaction; the async grading task acts as
// an idempotent safety net gated on Answer.Graded.
type AnswerService interface {
	Submit(userID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
	GetAnswers(participantID *uint, limit, offset int) ([]dto.AnswerResponse, error)
}

type answerService struct {
	questionRepo    repository.QuestionRepository
	choiceRepo      repository.ChoiceRepository
	participantRepo repository.ParticipantRepository
	answerRepo      repository.AnswerRepository
	dispatcher      *task.Dispatcher
	db              *gorm.DB
}

func NewAnswerService(
	questionRepo repository.QuestionRepository,
	choiceRepo repository.ChoiceRepository,
	participantRepo repository.ParticipantRepository,
	answerRepo repository.AnswerRepository,
	dispatcher *task.Dispatcher,
	db *gorm.DB,
) AnswerService {
	return &answerService{
		questionRepo:    questionRepo,
		choiceRepo:      choiceRepo,
		participantRepo: participantRepo,
		answerRepo:      answerRepo,
		dispatcher:      dispatcher,
		db:              db,
	}
}

// Submit records one answer for the authenticated user.
//
// Invariants enforced: the choice must belong to the question, the user must
// hold a participant row for the question's exam, and at most one answer may
// exist per (participant, question) pair. On a correct answer the participant
// score is incremented in place (score = score + points) inside the same
// transaction as the answer insert, so concurrent submissions on different
// questions never lose updates.
func (s *answerService) Submit(userID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", req.QuestionID).Msg("Submit: question lookup failed")
		return nil, model.ErrQuestionNotFound
	}

	choice, err := s.choiceRepo.FindByID(req.ChoiceID)
	if err != nil {
		log.Warn().Err(err).Uint("choiceID", req.ChoiceID).Msg("Submit: choice lookup failed")
		return nil, model.ErrChoiceNotFound
	}

	if choice.QuestionID != question.ID {
		return nil, model.ErrChoiceMismatch
	}

	participant, err := s.participantRepo.FindByUserAndExam(userID, question.ExamID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, model.ErrNotRegistered
	}

	exists, err := s.answerRepo.ExistsForParticipantAndQuestion(participant.ID, question.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrDuplicateAnswer
	}

	answer := model.Answer{
		ParticipantID: participant.ID,
		QuestionID:    question.ID,
		ChoiceID:      &choice.ID,
		TextAnswer:    req.TextAnswer,
		IsCorrect:     choice.IsCorrect,
		Graded:        true, // scored here; the async task must not credit again
		ResponseTime:  req.ResponseTime,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		if choice.IsCorrect {
			return tx.Model(&model.Participant{}).
				Where("id = ?", participant.ID).
				UpdateColumn("score", gorm.Expr("score + ?", float64(question.Points))).Error
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("participantID", participant.ID).Uint("questionID", question.ID).
			Msg("Submit: transaction failed")
		return nil, err
	}

	log.Info().Uint("answerID", answer.ID).Uint("participantID", participant.ID).
		Bool("correct", answer.IsCorrect).Msg("Answer submitted")

	// Fire-and-forget: the task re-checks the graded flag and refreshes the
	// exam ranking whether or not scoring was a no-op.
	s.dispatcher.Enqueue(task.GradeAnswer, answer.ID)

	var resp dto.AnswerResponse
	if err := copier.Copy(&resp, &answer); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *answerService) GetAnswers(participantID *uint, limit, offset int) ([]dto.AnswerResponse, error) {
	answers, err := s.answerRepo.FindAll(participantID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnswerResponse, 0, len(answers))
	if err := copier.Copy(&resp, &answers); err != nil {
		return nil, err
	}
	return resp, nil
}
