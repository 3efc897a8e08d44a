package repository

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	Create(choice *model.Choice) error
	FindByID(id uint) (*model.Choice, error)
	FindAll(questionID *uint, limit, offset int) ([]model.Choice, error)
	Update(choice *model.Choice) error
	Delete(id uint) error
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) FindByID(id uint) (*model.Choice, error) {
	var choice model.Choice
	if err := r.db.First(&choice, id).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

func (r *choiceRepository) FindAll(questionID *uint, limit, offset int) ([]model.Choice, error) {
	var choices []model.Choice
	query := r.db.Model(&model.Choice{})
	if questionID != nil {
		query = query.Where("question_id = ?", *questionID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Order("display_order ASC, id ASC").Find(&choices).Error
	return choices, err
}

func (r *choiceRepository) Update(choice *model.Choice) error {
	return r.db.Save(choice).Error
}

func (r *choiceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Choice{}, id).Error
}
