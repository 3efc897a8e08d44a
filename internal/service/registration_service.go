package service

import (
	"time"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RegistrationService enforces the one-registration-per-exam rule and the
// attempt ceiling when a user enrolls in an exam.
type RegistrationService interface {
	Register(userID, examID uint) (*dto.ParticipantResponse, error)
}

type registrationService struct {
	examRepo        repository.ExamRepository
	participantRepo repository.ParticipantRepository
	db              *gorm.DB
}

func NewRegistrationService(
	examRepo repository.ExamRepository,
	participantRepo repository.ParticipantRepository,
	db *gorm.DB,
) RegistrationService {
	return &registrationService{
		examRepo:        examRepo,
		participantRepo: participantRepo,
		db:              db,
	}
}

// Register creates a participant row for (user, exam).
//
// A user holding any participant row for the exam is rejected with
// ErrAlreadyRegistered regardless of attempt count. Otherwise the next
// attempt number (last + 1, or 1 if none) must stay below the exam's
// MaxAttempts; the boundary is exclusive, so an exam with MaxAttempts=1
// rejects even the first registration. Registrations removed by an admin
// still count toward the ceiling.
func (s *registrationService) Register(userID, examID uint) (*dto.ParticipantResponse, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("Register: exam lookup failed")
		return nil, model.ErrExamNotFound
	}

	existing, err := s.participantRepo.FindByUserAndExam(userID, examID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrAlreadyRegistered
	}

	last, err := s.participantRepo.FindLastAttempt(userID, examID)
	if err != nil {
		return nil, err
	}
	nextAttempt := uint(1)
	if last != nil {
		nextAttempt = last.CurrentAttempt + 1
	}
	if nextAttempt >= exam.MaxAttempts {
		return nil, model.ErrAttemptLimitExceeded
	}

	now := time.Now()
	participant := model.Participant{
		UserID:         userID,
		ExamID:         examID,
		Score:          0,
		Rank:           nil,
		CurrentAttempt: nextAttempt,
		StartedAt:      &now,
	}

	// Single insert; the unique (user, exam, attempt) index backs up the
	// existence check under concurrent registrations.
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&participant).Error
	}); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("examID", examID).Msg("Register: failed to create participant")
		return nil, err
	}

	log.Info().Uint("userID", userID).Uint("examID", examID).Uint("attempt", nextAttempt).Msg("Participant registered")

	var resp dto.ParticipantResponse
	if err := copier.Copy(&resp, &participant); err != nil {
		return nil, err
	}
	return &resp, nil
}
