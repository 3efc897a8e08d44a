package repository

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAll(search string, isActive *bool, limit, offset int) ([]model.Exam, error)
	FindActive() ([]model.Exam, error)
	Update(exam *model.Exam) error
	Delete(id uint) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	// GORM creates associated questions/choices when populated
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.display_order ASC")
	}).First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAll(search string, isActive *bool, limit, offset int) ([]model.Exam, error) {
	var exams []model.Exam
	query := r.db.Model(&model.Exam{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) FindActive() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Save(exam).Error
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Delete(&model.Exam{}, id).Error
}
