package repository

import (
	"errors"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(participant *model.Participant) error
	FindByID(id uint) (*model.Participant, error)
	FindByUserAndExam(userID, examID uint) (*model.Participant, error)
	FindLastAttempt(userID, examID uint) (*model.Participant, error)
	FindAll(examID *uint, limit, offset int) ([]model.Participant, error)
	FindRanking(examID uint) ([]model.Participant, error)
	Delete(id uint) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(participant *model.Participant) error {
	return r.db.Create(participant).Error
}

func (r *participantRepository) FindByID(id uint) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindByUserAndExam returns any participant row for the (user, exam) pair,
// irrespective of attempt number. Returns (nil, nil) when none exists.
func (r *participantRepository) FindByUserAndExam(userID, examID uint) (*model.Participant, error) {
	var participant model.Participant
	err := r.db.Where("user_id = ? AND exam_id = ?", userID, examID).First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindLastAttempt returns the participant row with the highest attempt number
// for the (user, exam) pair, or (nil, nil) when none exists. Soft-deleted rows
// are included: a removed registration still consumed its attempt, and the
// next insert must not collide with it on the (user, exam, attempt) index.
func (r *participantRepository) FindLastAttempt(userID, examID uint) (*model.Participant, error) {
	var participant model.Participant
	err := r.db.Unscoped().Where("user_id = ? AND exam_id = ?", userID, examID).
		Order("current_attempt DESC").First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindAll(examID *uint, limit, offset int) ([]model.Participant, error) {
	var participants []model.Participant
	query := r.db.Model(&model.Participant{})
	if examID != nil {
		query = query.Where("exam_id = ?", *examID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Order("score DESC").Find(&participants).Error
	return participants, err
}

// FindRanking orders an exam's participants by descending score, ties broken
// by earliest start time. The recompute task applies the same ordering.
func (r *participantRepository) FindRanking(examID uint) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.Where("exam_id = ?", examID).
		Order("score DESC, started_at ASC").
		Find(&participants).Error
	return participants, err
}

func (r *participantRepository) Delete(id uint) error {
	return r.db.Delete(&model.Participant{}, id).Error
}
