package service_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	// A single connection serializes writers against the in-memory store.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Question{},
		&model.Choice{},
		&model.Participant{},
		&model.Answer{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "irrelevant", Role: model.RoleParticipant, IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedExam(t *testing.T, db *gorm.DB, title string, maxAttempts uint) *model.Exam {
	t.Helper()
	exam := &model.Exam{
		Title:       title,
		Description: "seeded exam",
		IsActive:    true,
		CreatedByID: 1,
		Duration:    60,
		MaxAttempts: maxAttempts,
	}
	if err := db.Create(exam).Error; err != nil {
		t.Fatalf("failed to seed exam: %v", err)
	}
	return exam
}

func seedQuestion(t *testing.T, db *gorm.DB, examID uint, points uint) *model.Question {
	t.Helper()
	question := &model.Question{
		ExamID: examID,
		Text:   "seeded question",
		Type:   model.QuestionTypeMCQ,
		Points: points,
	}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return question
}

func seedChoice(t *testing.T, db *gorm.DB, questionID uint, correct bool) *model.Choice {
	t.Helper()
	choice := &model.Choice{
		QuestionID: questionID,
		Text:       "seeded choice",
		IsCorrect:  correct,
	}
	if err := db.Create(choice).Error; err != nil {
		t.Fatalf("failed to seed choice: %v", err)
	}
	return choice
}

func seedParticipant(t *testing.T, db *gorm.DB, userID, examID uint, score float64, startedAt time.Time) *model.Participant {
	t.Helper()
	participant := &model.Participant{
		UserID:         userID,
		ExamID:         examID,
		Score:          score,
		CurrentAttempt: 1,
		StartedAt:      &startedAt,
	}
	if err := db.Create(participant).Error; err != nil {
		t.Fatalf("failed to seed participant: %v", err)
	}
	return participant
}
