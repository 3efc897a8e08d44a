package repository

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByID(id uint) (*model.Answer, error)
	FindByIDWithRelations(id uint) (*model.Answer, error)
	ExistsForParticipantAndQuestion(participantID, questionID uint) (bool, error)
	FindAll(participantID *uint, limit, offset int) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// FindByIDWithRelations loads the answer together with its choice, question
// and participant, the rows the grading task needs in one read.
func (r *answerRepository) FindByIDWithRelations(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.
		Preload("Choice").
		Preload("Question").
		Preload("Participant").
		First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) ExistsForParticipantAndQuestion(participantID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("participant_id = ? AND question_id = ?", participantID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *answerRepository) FindAll(participantID *uint, limit, offset int) ([]model.Answer, error) {
	var answers []model.Answer
	query := r.db.Model(&model.Answer{})
	if participantID != nil {
		query = query.Where("participant_id = ?", *participantID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Order("answered_at DESC").Find(&answers).Error
	return answers, err
}
