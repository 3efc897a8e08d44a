package repository

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithChoices(id uint) (*model.Question, error)
	FindAll(examID *uint, limit, offset int) ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithChoices(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.display_order ASC")
	}).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(examID *uint, limit, offset int) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Model(&model.Question{})
	if examID != nil {
		query = query.Where("exam_id = ?", *examID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
